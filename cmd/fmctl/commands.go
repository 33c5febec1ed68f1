package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/profiles"
	"github.com/founder-match/founder-match-web/internal/projects"
	"github.com/founder-match/founder-match-web/internal/projects/domain"
	"github.com/founder-match/founder-match-web/internal/users"
)

// run executes one command against the backend and writes its result to out.
func run(client *apiclient.Client, cmd string, args []string, out io.Writer) error {
	ctx := context.Background()

	var (
		res any
		err error
	)
	switch cmd {
	case "projects":
		var q domain.Query
		q, err = parseQuery(args)
		if err == nil {
			res, err = projects.NewAPI(client).List(ctx, q)
		}
	case "project":
		res, err = withID(args, func(id int64) (any, error) {
			return projects.NewAPI(client).Get(ctx, id)
		})
	case "profiles":
		res, err = profiles.NewAPI(client).List(ctx)
	case "profile":
		res, err = withID(args, func(id int64) (any, error) {
			return profiles.NewAPI(client).Get(ctx, id)
		})
	case "users":
		res, err = users.NewAPI(client).ListUsers(ctx)
	case "user":
		res, err = withID(args, func(id int64) (any, error) {
			return users.NewAPI(client).GetUser(ctx, id)
		})
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// parseQuery reads key=value filters such as stage=MVP keyword=ai. Values the
// backend would not recognise are rejected rather than dropped.
func parseQuery(args []string) (domain.Query, error) {
	var q domain.Query
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return q, fmt.Errorf("filter %q: want key=value", arg)
		}
		switch key {
		case "stage":
			q.Stage = domain.Stage(value)
		case "domain":
			q.Domain = domain.Domain(value)
		case "workStyle":
			q.WorkStyle = domain.WorkStyle(value)
		case "rewardType":
			q.RewardType = domain.RewardType(value)
		case "keyword":
			q.Keyword = strings.TrimSpace(value)
		default:
			return q, fmt.Errorf("unknown filter %q", key)
		}
	}
	if clean := q.Sanitize(); clean != q {
		return q, fmt.Errorf("invalid filter value in %v", args)
	}
	return q, nil
}

func withID(args []string, get func(id int64) (any, error)) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid id %q", args[0])
	}
	return get(id)
}
