package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type founderNeed struct {
	Title       string
	Description string
}

var founderNeeds = []founderNeed{
	{
		Title:       "A PM to team up with an AI researcher",
		Description: "I want to build a collaboration tool on generative AI and need a PM to own the user experience.",
	},
	{
		Title:       "Co-founder for a healthcare SaaS",
		Description: "We are preparing a finance SaaS for hospitals and need a partner who knows the medical domain.",
	},
	{
		Title:       "Fintech product designer",
		Description: "We are planning a wealth management app for young adults and want someone to lead design and branding.",
	},
}

func (h *Handler) home(c *gin.Context) {
	render(c, http.StatusOK, "home", "", gin.H{"Cards": founderNeeds})
}
