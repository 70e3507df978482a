package utils

import (
	"fmt"
	"math/rand"
)

// GenerateRandomHexColor picks the background color shown behind a
// testimonial when the testifier skipped the avatar upload.
func GenerateRandomHexColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
