package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shorlabs/shor-go/pkg/shor"
)

var defaults = map[string]any{
	"max_attempts":         shor.DefaultMaxAttempts,
	"skip_primality_check": false,
	"all":                  false,
}

func optionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"defaultOptions": defaults,
	})
}
