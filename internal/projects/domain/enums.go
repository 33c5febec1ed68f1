package domain

// Stage is how far a project has come.
type Stage string

const (
	StageIdea     Stage = "IDEA"
	StageMVP      Stage = "MVP"
	StageRevenue  Stage = "REVENUE"
	StageInvested Stage = "INVESTED"
)

type Domain string

const (
	DomainHealthcare    Domain = "HEALTHCARE"
	DomainFintech       Domain = "FINTECH"
	DomainEducation     Domain = "EDUCATION"
	DomainEntertainment Domain = "ENTERTAINMENT"
	DomainCommerce      Domain = "COMMERCE"
	DomainOther         Domain = "OTHER"
)

type WorkStyle string

const (
	WorkStyleRemote WorkStyle = "REMOTE"
	WorkStyleOnsite WorkStyle = "ONSITE"
	WorkStyleHybrid WorkStyle = "HYBRID"
)

type RewardType string

const (
	RewardEquity       RewardType = "EQUITY"
	RewardSalary       RewardType = "SALARY"
	RewardNone         RewardType = "NONE"
	RewardRevenueShare RewardType = "REVENUE_SHARE"
)

// Option lists, in display order.
var (
	Stages      = []Stage{StageIdea, StageMVP, StageRevenue, StageInvested}
	Domains     = []Domain{DomainHealthcare, DomainFintech, DomainEducation, DomainEntertainment, DomainCommerce, DomainOther}
	WorkStyles  = []WorkStyle{WorkStyleRemote, WorkStyleOnsite, WorkStyleHybrid}
	RewardTypes = []RewardType{RewardEquity, RewardSalary, RewardNone, RewardRevenueShare}
)

func (s Stage) Valid() bool      { return contains(Stages, s) }
func (d Domain) Valid() bool     { return contains(Domains, d) }
func (w WorkStyle) Valid() bool  { return contains(WorkStyles, w) }
func (r RewardType) Valid() bool { return contains(RewardTypes, r) }

func contains[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}
