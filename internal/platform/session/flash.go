package session

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// flashCookieName carries pending one-shot notices between a redirect and the
// next rendered page.
const flashCookieName = "hp_flash"

// Flash levels.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notice rendered once on the next page load.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SetFlash appends a notice to the flash cookie.
func SetFlash(c *gin.Context, level, message string) {
	flashes := readFlashes(c)
	flashes = append(flashes, Flash{Level: level, Message: message})

	data, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, base64.RawURLEncoding.EncodeToString(data), 300, "/", "", false, true)
}

// PopFlashes returns the pending notices and clears the flash cookie.
func PopFlashes(c *gin.Context) []Flash {
	flashes := readFlashes(c)
	if len(flashes) > 0 {
		c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	}
	return flashes
}

func readFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
