package server

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// pathID parses a snowflake id from a path parameter, aborting with a
// 400 when it is malformed.
func pathID(c *gin.Context, param string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param(param)))
	if err != nil {
		AbortWithError(c, invalidIDError(param))
		return 0, false
	}
	return id, true
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

func parseIDs(raw []string) ([]snowflake.ID, error) {
	ids := make([]snowflake.ID, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDate accepts calendar dates in RFC 3339 short form (2026-07-04).
func parseDate(raw string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(raw))
}
