package asset

import "fmt"

const imageHost = "https://images.fotmob.com/image_resources"

func PlayerPhotoURL(playerID int64) string {
	return fmt.Sprintf("%s/playerimages/%d.png", imageHost, playerID)
}

func TeamLogoURL(teamID int64) string {
	return fmt.Sprintf("%s/logo/teamlogo/%d.png", imageHost, teamID)
}

func LeagueLogoURL(leagueID int64) string {
	return fmt.Sprintf("%s/logo/leaguelogo/%d.png", imageHost, leagueID)
}
