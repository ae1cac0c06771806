package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/okiprasetya/user-management-api/internal/application"
	"github.com/okiprasetya/user-management-api/pkg/helpers"
	"github.com/okiprasetya/user-management-api/pkg/response"
)

// translate is the shared tail of every flow's error mapping: duplicate
// identities become 409 with the conflict field set, anything unexpected
// is logged and degraded to a generic 500 so no internal detail leaks.
func translate(c *gin.Context, logger *logrus.Logger, err error) {
	var conflict *application.ConflictError
	if errors.As(err, &conflict) {
		response.ErrorWithFields(c, http.StatusConflict, conflict.Message, conflict.Details())
		return
	}
	helpers.LogError(logger, "flow failed", err, logrus.Fields{
		"path":       c.FullPath(),
		"request_id": c.GetString("request_id"),
	})
	response.Error(c, http.StatusInternalServerError, "Internal server error")
}
