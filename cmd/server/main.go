package main

import (
	"os"

	"mathflow/backend/internal/app"
)

// @title MathFlow Backend API
// @version 1.0
// @description Math tutoring relay: OCR, structured reasoning and French speech synthesis.
// @BasePath /
func main() {
	os.Exit(app.Run())
}
