package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ldecampos/namecraft/casing"
	"github.com/ldecampos/namecraft/renamer"
	"github.com/ldecampos/namecraft/sequencer"
	"github.com/ldecampos/namecraft/valuecodec"
)

type classifyInput struct {
	Names []string `json:"names" jsonschema:"Names to classify"`
}

type classification struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

type classifyOutput struct {
	Results []classification `json:"results"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), classifyOutput{}, nil
	}

	results := makeSlice[classification](len(input.Names))
	for _, name := range input.Names {
		results = append(results, classification{Name: name, Style: string(casing.Classify(name))})
	}
	return nil, classifyOutput{Results: results}, nil
}

type convertCaseInput struct {
	Names       []string `json:"names"                  jsonschema:"Names to convert"`
	Style       string   `json:"style"                  jsonschema:"Target case style: camelCase\\, PascalCase\\, snake_case\\, or kebab-case"`
	StripDigits bool     `json:"strip_digits,omitempty" jsonschema:"Remove digit runs from the converted names"`
}

type conversion struct {
	Name      string `json:"name"`
	Converted string `json:"converted"`
}

type convertCaseOutput struct {
	Results []conversion `json:"results"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), convertCaseOutput{}, nil
	}
	if input.Style == "" {
		return errResult(fmt.Errorf("style is required")), convertCaseOutput{}, nil
	}

	var opts []casing.Option
	if input.StripDigits {
		opts = append(opts, casing.StripDigits())
	}

	results := makeSlice[conversion](len(input.Names))
	for _, name := range input.Names {
		converted, err := casing.Convert(name, casing.Style(input.Style), opts...)
		if err != nil {
			return errResult(err), convertCaseOutput{}, nil
		}
		results = append(results, conversion{Name: name, Converted: converted})
	}
	return nil, convertCaseOutput{Results: results}, nil
}

type tokenizeInput struct {
	Name string `json:"name" jsonschema:"Name to split into word tokens"`
}

type tokenizeOutput struct {
	Tokens []string `json:"tokens,omitempty"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name is required")), tokenizeOutput{}, nil
	}
	return nil, tokenizeOutput{Tokens: casing.Tokenize(input.Name)}, nil
}

type incrementInput struct {
	Names   []string `json:"names"             jsonschema:"Names to increment"`
	Letters bool     `json:"letters,omitempty" jsonschema:"Step each name as a base-26 letter sequence instead of digits"`
	Pad     int      `json:"pad,omitempty"     jsonschema:"Zero-fill width for the digit run. Defaults to NAMECRAFT_PAD."`
}

type sequenceStep struct {
	Name string `json:"name"`
	Next string `json:"next"`
}

type incrementOutput struct {
	Results []sequenceStep `json:"results"`
}

func handleIncrement(_ context.Context, _ *mcp.CallToolRequest, input incrementInput) (*mcp.CallToolResult, incrementOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), incrementOutput{}, nil
	}

	pad := input.Pad
	if pad <= 0 {
		pad = cfg.Pad
	}

	results := makeSlice[sequenceStep](len(input.Names))
	for _, name := range input.Names {
		next := ""
		if input.Letters {
			next = sequencer.IncrementLetters(name)
		} else {
			next = sequencer.IncrementDigits(name, pad)
		}
		results = append(results, sequenceStep{Name: name, Next: next})
	}
	return nil, incrementOutput{Results: results}, nil
}

type decrementInput struct {
	Names   []string `json:"names"             jsonschema:"Names to decrement"`
	Letters bool     `json:"letters,omitempty" jsonschema:"Step each name back as a base-26 letter sequence instead of digits"`
}

type decrementOutput struct {
	Results []sequenceStep `json:"results"`
}

func handleDecrement(_ context.Context, _ *mcp.CallToolRequest, input decrementInput) (*mcp.CallToolResult, decrementOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), decrementOutput{}, nil
	}

	results := makeSlice[sequenceStep](len(input.Names))
	for _, name := range input.Names {
		next := ""
		if input.Letters {
			next = sequencer.DecrementLetters(name)
		} else {
			next = sequencer.DecrementDigits(name)
		}
		results = append(results, sequenceStep{Name: name, Next: next})
	}
	return nil, decrementOutput{Results: results}, nil
}

type extractDigitsInput struct {
	Name      string `json:"name"                jsonschema:"Name to extract digit runs from"`
	Index     *int   `json:"index,omitempty"     jsonschema:"Return only the run at this index. Negative counts from the end."`
	Bracketed bool   `json:"bracketed,omitempty" jsonschema:"Return only runs inside [...] pairs"`
}

type extractDigitsOutput struct {
	Runs []string `json:"runs,omitempty"`
}

func handleExtractDigits(_ context.Context, _ *mcp.CallToolRequest, input extractDigitsInput) (*mcp.CallToolResult, extractDigitsOutput, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name is required")), extractDigitsOutput{}, nil
	}

	switch {
	case input.Bracketed:
		return nil, extractDigitsOutput{Runs: sequencer.BracketedDigitRuns(input.Name)}, nil
	case input.Index != nil:
		if run, ok := sequencer.DigitRunAt(input.Name, *input.Index); ok {
			return nil, extractDigitsOutput{Runs: []string{run}}, nil
		}
		return nil, extractDigitsOutput{}, nil
	}
	return nil, extractDigitsOutput{Runs: sequencer.DigitRuns(input.Name)}, nil
}

type encodeValueInput struct {
	Value float64 `json:"value" jsonschema:"Value to encode as an identifier-safe token"`
}

type encodeValueOutput struct {
	Token string `json:"token"`
}

func handleEncodeValue(_ context.Context, _ *mcp.CallToolRequest, input encodeValueInput) (*mcp.CallToolResult, encodeValueOutput, error) {
	return nil, encodeValueOutput{Token: valuecodec.Encode(input.Value)}, nil
}

type decodeValueInput struct {
	Token string `json:"token" jsonschema:"Identifier-safe value token\\, e.g. M0d99"`
}

type decodeValueOutput struct {
	Value float64 `json:"value"`
}

func handleDecodeValue(_ context.Context, _ *mcp.CallToolRequest, input decodeValueInput) (*mcp.CallToolResult, decodeValueOutput, error) {
	value, err := valuecodec.Decode(input.Token)
	if err != nil {
		return errResult(err), decodeValueOutput{}, nil
	}
	return nil, decodeValueOutput{Value: value}, nil
}

type previewRenameInput struct {
	Names  []string `json:"names"            jsonschema:"Names the plan is applied to\\, in order"`
	Plan   string   `json:"plan"             jsonschema:"YAML rename plan with a rules list"`
	Unique *bool    `json:"unique,omitempty" jsonschema:"Bump numeric suffixes so computed names stay unique within the batch. Defaults to NAMECRAFT_RENAME_UNIQUE."`
}

type renamePreview struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type previewRenameOutput struct {
	Renames []renamePreview `json:"renames"`
}

func handlePreviewRename(_ context.Context, _ *mcp.CallToolRequest, input previewRenameInput) (*mcp.CallToolResult, previewRenameOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), previewRenameOutput{}, nil
	}
	if input.Plan == "" {
		return errResult(fmt.Errorf("plan is required")), previewRenameOutput{}, nil
	}

	plan, err := renamer.ParsePlan([]byte(input.Plan))
	if err != nil {
		return errResult(err), previewRenameOutput{}, nil
	}

	unique := cfg.RenameUnique
	if input.Unique != nil {
		unique = *input.Unique
	}

	var renames []renamer.Rename
	if unique {
		renames, err = plan.Apply(renamer.NewMemoryGraph(input.Names...), input.Names)
	} else {
		renames, err = plan.Preview(input.Names)
	}
	if err != nil {
		return errResult(err), previewRenameOutput{}, nil
	}

	out := previewRenameOutput{Renames: makeSlice[renamePreview](len(renames))}
	for _, r := range renames {
		out.Renames = append(out.Renames, renamePreview{From: r.From, To: r.To})
	}
	return nil, out, nil
}
