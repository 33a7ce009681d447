package metadata

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/matzehuels/dove/pkg/manifest"
)

func TestValidate_EncodedDocuments(t *testing.T) {
	tests := []struct {
		name string
		pkg  manifest.Package
	}{
		{"empty package", manifest.Package{}},
		{"demo", demoManifest().Package},
		{
			name: "all fields",
			pkg: manifest.Package{
				Name:           manifest.String("coins"),
				AccountAddress: manifest.String("0x1"),
				Authors:        []string{"Alice"},
				BlockchainAPI:  manifest.String("http://localhost:1317"),
				Dependencies: []manifest.Dependence{
					manifest.Git{Git: "https://x/git", Branch: manifest.String("main"), Rev: manifest.String("abc"), Tag: manifest.String("v1"), Path: manifest.String("move")},
					manifest.Path{Path: "../lib"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(FromManifest(&manifest.Manifest{Package: tt.pkg, Layout: manifest.DefaultLayout()}))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if err := Validate(out); err != nil {
				t.Errorf("Validate failed: %v\n%s", err, out)
			}
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing layout", `{"package": {"name": "x", "account_address": null, "authors": [], "blockchain_api": null, "git_dependencies": [], "local_dependencies": []}}`},
		{"null name", `{"package": {"name": null, "account_address": null, "authors": [], "blockchain_api": null, "git_dependencies": [], "local_dependencies": []}, "layout": {}}`},
		{"null authors", `{"package": {"name": "x", "account_address": null, "authors": null, "blockchain_api": null, "git_dependencies": [], "local_dependencies": []}, "layout": {}}`},
		{"git without url", `{"package": {"name": "x", "account_address": null, "authors": [], "blockchain_api": null, "git_dependencies": [{"branch": "main"}], "local_dependencies": []}, "layout": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.input))
			var ve *jsonschema.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Validate() error = %v, want *jsonschema.ValidationError", err)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	var v map[string]any
	if err := json.Unmarshal(Schema(), &v); err != nil {
		t.Fatalf("Schema() is not JSON: %v", err)
	}
	if v["title"] != "dove project metadata" {
		t.Errorf("title = %v", v["title"])
	}
}
