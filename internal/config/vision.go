package config

import "path/filepath"

// VisionConfig holds settings for reading boards from screenshots.
type VisionConfig struct {
	// TemplateDir holds tiles/ and pieces/; empty means the directory of
	// each image
	TemplateDir string
}

// NewVisionConfig creates a VisionConfig with default values.
func NewVisionConfig() *VisionConfig {
	return &VisionConfig{}
}

// TemplateDirFor returns the template directory for the given image path.
func (c *VisionConfig) TemplateDirFor(imagePath string) string {
	if c.TemplateDir != "" {
		return c.TemplateDir
	}
	return filepath.Dir(imagePath)
}
