// Package export coordinates the simulated multi-service export
// workflow: request validation, peer health probes, workflow planning,
// and step-by-step execution with explicit per-step state. Only the
// health probes touch the network; every other step is simulated.
package export

// ServiceInfo describes a peer service in the export ecosystem.
type ServiceInfo struct {
	URL            string   `json:"url"`
	Capabilities   []string `json:"capabilities"`
	ExportFormats  []string `json:"export_formats"`
	HealthEndpoint string   `json:"health_endpoint"`
}

// FormatInfo describes a supported export format.
type FormatInfo struct {
	Name              string   `json:"name"`
	MIMEType          string   `json:"mime_type"`
	RequiresLaTeX     bool     `json:"requires_latex"`
	CompatibleStyles  []string `json:"compatible_styles"`
	ProcessingService string   `json:"processing_service"`
}

const selfService = "publication_style_config_server"

func serviceRegistry() map[string]ServiceInfo {
	return map[string]ServiceInfo{
		"distance_server": {
			URL:            "http://localhost:5001",
			Capabilities:   []string{"distance_calculation", "visualization", "data_export"},
			ExportFormats:  []string{"json", "csv", "excel"},
			HealthEndpoint: "/health",
		},
		"styles_gallery": {
			URL:            "http://localhost:4090",
			Capabilities:   []string{"style_management", "asset_serving", "preview_generation"},
			ExportFormats:  []string{"html", "css", "json"},
			HealthEndpoint: "/health",
		},
		"style_assets": {
			URL:            "http://localhost:5003",
			Capabilities:   []string{"asset_management", "font_serving", "color_schemes"},
			ExportFormats:  []string{"zip", "tar", "json"},
			HealthEndpoint: "/health",
		},
	}
}

func exportFormats() map[string]FormatInfo {
	return map[string]FormatInfo{
		"pdf": {
			Name:              "PDF Document",
			MIMEType:          "application/pdf",
			RequiresLaTeX:     true,
			CompatibleStyles:  []string{"ieee", "nature", "apa"},
			ProcessingService: selfService,
		},
		"docx": {
			Name:              "Microsoft Word Document",
			MIMEType:          "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			RequiresLaTeX:     false,
			CompatibleStyles:  []string{"ieee", "nature", "apa"},
			ProcessingService: selfService,
		},
		"html": {
			Name:              "HTML Document",
			MIMEType:          "text/html",
			RequiresLaTeX:     false,
			CompatibleStyles:  []string{"ieee", "nature", "apa", "web"},
			ProcessingService: "styles_gallery",
		},
		"latex": {
			Name:              "LaTeX Source",
			MIMEType:          "text/x-tex",
			RequiresLaTeX:     false,
			CompatibleStyles:  []string{"ieee", "nature", "apa"},
			ProcessingService: selfService,
		},
		"markdown": {
			Name:              "Markdown Document",
			MIMEType:          "text/markdown",
			RequiresLaTeX:     false,
			CompatibleStyles:  []string{"github", "basic"},
			ProcessingService: selfService,
		},
	}
}
