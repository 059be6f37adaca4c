package api

import (
	"fmt"
	"net/http"

	resdto "invoice-dashboard/internal/handler/dto/response"
	"invoice-dashboard/internal/handler/httperr"
	"invoice-dashboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// writeResult turns an action result into a response. Forms with field
// errors answer 422; any other state answers failureStatus.
func writeResult(c *gin.Context, res commands.Result, failureStatus int) {
	switch r := res.(type) {
	case commands.RedirectTo:
		c.Redirect(http.StatusSeeOther, r.Path)
	case commands.ActionState:
		status := failureStatus
		if len(r.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, resdto.FromActionState(r))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError,
			fmt.Errorf("unexpected action result %T", res), "Internal server error", nil)
	}
}
