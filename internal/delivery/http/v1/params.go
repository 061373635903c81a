package v1

import (
	"fmt"

	"skill-summarizer-backend/pkg/apperror"
	"skill-summarizer-backend/pkg/objectid"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id parameter. A malformed id is reported the same way
// as a missing record.
func pathID(c *gin.Context, resource string) (objectid.ID, bool) {
	id := objectid.Parse(c.Param("id"))
	if !id.Valid() {
		c.Error(apperror.NotFound(fmt.Sprintf("%s %s not found", resource, id)))
		return id, false
	}
	return id, true
}
