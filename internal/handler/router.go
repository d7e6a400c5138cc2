package handler

import "github.com/gin-gonic/gin"

// Register wires every API route onto r.
func Register(r gin.IRouter, football *FootballHandler, articles *ArticleHandler, system *SystemHandler) {
	api := r.Group("/api")

	api.GET("/health", system.GetHealth)
	api.POST("/cache/clear", system.ClearCache)

	api.GET("/standings", football.GetStandings)
	api.GET("/standings/last", football.GetLastStandings)
	api.GET("/matches", football.GetMatches)
	api.GET("/matches/last", football.GetLastMatches)
	api.GET("/scorers", football.GetScorers)
	api.GET("/teams", football.GetTeams)
	api.GET("/competition", football.GetCompetition)
	api.GET("/head2head", football.GetHeadToHead)
	api.GET("/head2head/:matchId", football.GetHeadToHead)

	api.GET("/guardian/match", articles.GetMatchArticles)
	api.GET("/guardian/team", articles.GetTeamArticles)
}
