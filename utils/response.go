package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONCreated is the {success, id} shape the admin front-end expects from
// upsert endpoints.
func JSONCreated(c *gin.Context, code int, id string) {
	c.JSON(code, gin.H{"success": true, "id": id})
}
