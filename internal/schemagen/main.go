// Command schemagen writes the JSON schema for YAML and TOML settings files.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/macropower/chatwin/pkg/config"
)

var outFile = flag.String("o", "chat.schema.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	jsData, err := config.SchemaJSON()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, append(jsData, '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
