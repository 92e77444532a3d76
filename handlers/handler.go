package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidId = errors.New("invalid id")

func idParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidId
	}
	return id, nil
}

func queryString(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

func queryInt(c *gin.Context, key string) *int {
	if v, ok := c.GetQuery(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return &n
		}
	}
	return nil
}
