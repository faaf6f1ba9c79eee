package about

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type Page struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// lineage is the static narrative the about view renders.
var lineage = Page{
	Title: "Discover the Lineage",
	Sections: []Section{
		{
			Heading: "Rudi",
			Body: "Swami Rudrananda, known as Rudi, taught a practice of inner work " +
				"rooted in surrender and the growth of the heart. His teaching forms " +
				"the root of this lineage.",
		},
		{
			Heading: "Stuart",
			Body: "Stuart studied with Rudi and has carried the teaching forward for " +
				"decades, leading classes in the US and Europe. The talks indexed here " +
				"are recordings of those classes.",
		},
		{
			Heading: "This Archive",
			Body: "Every talk is transcribed, summarized, and tagged so that a " +
				"question asked today can find a teaching given years ago.",
		},
	},
}

type ControllerImpl struct{}

func NewControllerImpl() *ControllerImpl {
	return &ControllerImpl{}
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/about", c.GetAbout)
}

func (c *ControllerImpl) GetAbout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, lineage)
}
