package export

import (
	"context"
	"fmt"
	"time"

	"github.com/krisrjensen/publication-style-config-server/internal/processor"
)

// StepStatus tracks one workflow step through its lifecycle.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
)

// Workflow step actions.
const (
	ActionPreprocess  = "preprocess_content"
	ActionAssets      = "coordinate_assets"
	ActionConvert     = "format_conversion"
	ActionValidateOut = "validate_output"
)

// Step is one planned unit of the export workflow.
type Step struct {
	Number      int            `json:"step"`
	Action      string         `json:"action"`
	Service     string         `json:"service"`
	Description string         `json:"description"`
	Inputs      map[string]any `json:"inputs"`
}

// StepResult is the executed state of one step.
type StepResult struct {
	Number          int            `json:"step"`
	Action          string         `json:"action"`
	Service         string         `json:"service"`
	Status          StepStatus     `json:"status"`
	Output          map[string]any `json:"output,omitempty"`
	Error           string         `json:"error,omitempty"`
	ExecutionTimeMs int64          `json:"execution_time_ms"`
	Timestamp       string         `json:"timestamp"`
}

// Execution is the aggregate outcome of a workflow run. Execution halts
// at the first failed step; later steps stay pending and are not
// reported.
type Execution struct {
	Success        bool           `json:"success"`
	StepsCompleted int            `json:"steps_completed"`
	StepResults    []StepResult   `json:"step_results"`
	Errors         []string       `json:"errors"`
	FinalOutput    map[string]any `json:"final_output,omitempty"`
}

// planWorkflow lays out the export steps for a request: content
// preprocessing, asset coordination when the asset service is up,
// format conversion, and output validation.
func planWorkflow(req Request, formats map[string]FormatInfo, available map[string]Availability) []Step {
	workflow := []Step{{
		Number:      1,
		Action:      ActionPreprocess,
		Service:     selfService,
		Description: "Process content with style and template",
		Inputs: map[string]any{
			"content":       req.Content,
			"style":         req.Style,
			"template_type": req.templateTypeOrDefault(),
		},
	}}

	if assets, ok := available["style_assets"]; ok && assets.Available {
		workflow = append(workflow, Step{
			Number:      2,
			Action:      ActionAssets,
			Service:     "style_assets",
			Description: "Gather required style assets",
			Inputs: map[string]any{
				"style":  req.Style,
				"format": req.Format,
			},
		})
	}

	processingService := selfService
	if f, ok := formats[req.Format]; ok && f.ProcessingService != "" {
		processingService = f.ProcessingService
	}
	workflow = append(workflow, Step{
		Number:      len(workflow) + 1,
		Action:      ActionConvert,
		Service:     processingService,
		Description: fmt.Sprintf("Convert to %s format", req.Format),
		Inputs: map[string]any{
			"format":         req.Format,
			"export_options": req.ExportOptions,
		},
	})

	workflow = append(workflow, Step{
		Number:      len(workflow) + 1,
		Action:      ActionValidateOut,
		Service:     selfService,
		Description: "Validate export quality and completeness",
		Inputs:      map[string]any{},
	})

	return workflow
}

// executor runs planned steps. Preprocessing runs the real content
// processor; the remaining steps are simulated with fixed outputs and
// never call out.
type executor struct {
	proc *processor.Processor
}

func (e *executor) run(ctx context.Context, workflow []Step, coordinationID string) Execution {
	exec := Execution{
		Success:     true,
		StepResults: []StepResult{},
		Errors:      []string{},
	}

	for _, step := range workflow {
		result := e.runStep(ctx, step, coordinationID)
		exec.StepResults = append(exec.StepResults, result)

		if result.Status == StepFailed {
			exec.Success = false
			exec.Errors = append(exec.Errors, fmt.Sprintf("Step %d failed: %s", step.Number, result.Error))
			break
		}

		exec.StepsCompleted++
		if step.Number == len(workflow) {
			exec.FinalOutput = result.Output
		}
	}

	return exec
}

func (e *executor) runStep(ctx context.Context, step Step, coordinationID string) StepResult {
	start := time.Now()
	result := StepResult{
		Number:  step.Number,
		Action:  step.Action,
		Service: step.Service,
		Status:  StepPending,
	}

	output, err := e.stepOutput(step, coordinationID)
	result.ExecutionTimeMs = time.Since(start).Milliseconds()
	result.Timestamp = time.Now().Format(time.RFC3339Nano)
	if err != nil {
		result.Status = StepFailed
		result.Error = err.Error()
		return result
	}
	result.Status = StepSucceeded
	result.Output = output
	return result
}

func (e *executor) stepOutput(step Step, coordinationID string) (map[string]any, error) {
	switch step.Action {
	case ActionPreprocess:
		content, _ := step.Inputs["content"].(string)
		style, _ := step.Inputs["style"].(string)
		templateType, _ := step.Inputs["template_type"].(string)

		res, err := e.proc.Process(content, templateType, style)
		if err != nil {
			return nil, err
		}
		sections := make([]string, 0, len(res.TableOfContents))
		for _, entry := range res.TableOfContents {
			sections = append(sections, entry.Section)
		}
		return map[string]any{
			"processed_content": res,
			"sections":          sections,
			"word_count":        res.Statistics.TotalWords,
			"style_applied":     style,
		}, nil

	case ActionAssets:
		return map[string]any{
			"fonts":        []string{"times-new-roman", "arial"},
			"color_scheme": "academic_blue",
			"templates":    []string{"ieee_template.css"},
			"asset_count":  15,
		}, nil

	case ActionConvert:
		format, _ := step.Inputs["format"].(string)
		return map[string]any{
			"format":             format,
			"file_size":          "1.2MB",
			"pages":              8,
			"conversion_quality": "high",
			"download_url":       fmt.Sprintf("/exports/%s/output.%s", coordinationID, format),
		}, nil

	case ActionValidateOut:
		return map[string]any{
			"validation_passed": true,
			"quality_score":     0.95,
			"issues_found":      0,
			"recommendations":   []string{},
		}, nil

	default:
		return nil, fmt.Errorf("unknown action: %s", step.Action)
	}
}
