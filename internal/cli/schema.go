package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/timmy/machines-eye/internal/domain"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema <corpus|exhibition>",
		Short:     "Print the JSON Schema of a source document",
		Long:      "Print the JSON Schema the corpus or gallery layout document is decoded against, for use by annotation pipelines and editors.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"corpus", "exhibition"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd.OutOrStdout(), args[0])
		},
	}
}

func runSchema(out io.Writer, document string) error {
	var schema *jsonschema.Schema
	switch document {
	case "corpus":
		schema = documentSchema[domain.CorpusDocument]()
	case "exhibition":
		schema = documentSchema[domain.ExhibitionDocument]()
	default:
		return fmt.Errorf("unknown document %q (want corpus or exhibition)", document)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}

func documentSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
