package handlers

import (
	"encoding/base64"
	"net/http"

	"restaurant-menu-api/config"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// GetQRCode encodes the public menu URL as a PNG and returns it inline as a
// base64 data URL, so the landing page can render it without a file store.
func GetQRCode(c *gin.Context) {
	png, err := qrcode.Encode(config.MenuURL(), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"qrCode": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}
