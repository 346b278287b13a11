package faviquery

const (
	DefaultConcurrency = 1

	DefaultTemplatesDir = "nuclei-templates"
	TemplateExt         = ".yaml"
)
