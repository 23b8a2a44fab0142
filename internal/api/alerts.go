package api

import "github.com/gin-gonic/gin"

// applicationName prefixes every alert header so the frontend can route
// notifications per application.
const applicationName = "leaderboardApp"

const (
	alertHeader  = "X-" + applicationName + "-alert"
	errorHeader  = "X-" + applicationName + "-error"
	paramsHeader = "X-" + applicationName + "-params"
)

func setCreationAlert(c *gin.Context, entityName, param string) {
	c.Header(alertHeader, applicationName+"."+entityName+".created")
	c.Header(paramsHeader, param)
}

func setUpdateAlert(c *gin.Context, entityName, param string) {
	c.Header(alertHeader, applicationName+"."+entityName+".updated")
	c.Header(paramsHeader, param)
}

func setDeletionAlert(c *gin.Context, entityName, param string) {
	c.Header(alertHeader, applicationName+"."+entityName+".deleted")
	c.Header(paramsHeader, param)
}

func setErrorAlert(c *gin.Context, entityName, errorKey string) {
	c.Header(errorHeader, "error."+errorKey)
	c.Header(paramsHeader, entityName)
}
