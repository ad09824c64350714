// Command cocoon-lint-mapping verifies that a YAML mapping
// configuration covers every required attribute of the request model it
// targets, before any data is loaded against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	cocoon "github.com/daniel-ilyin/lusid-go-tools"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/schema"
)

func main() {
	mappingPath := flag.String("mapping", "", "mapping configuration file to lint")
	fileType := flag.String("file-type", "", "file type to verify (prompted when empty)")
	schemaPath := flag.String("schema", "", "platform document path (embedded document if empty)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -mapping <file> [-file-type <type>]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nVerify a mapping configuration against the platform model schemas.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *mappingPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	doc, err := mapping.LoadFile(*mappingPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load mapping configuration")
	}

	s, err := loadSchema(*schemaPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load platform document")
	}

	target := *fileType
	if target == "" {
		target, err = promptFileType(doc)
		if err != nil {
			log.Fatal().Err(err).Msg("no file type selected")
		}
	}

	if err := lint(s, doc, target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info().Str("file_type", target).Msg("mapping covers all required attributes")
}

func loadSchema(path string) (*schema.Schema, error) {
	ctx := context.Background()
	if path == "" {
		return schema.Default(ctx)
	}
	return schema.Load(ctx, schema.SourceFromFile(path))
}

// promptFileType asks which of the configuration's lintable file types
// to verify.
func promptFileType(doc map[string]any) (string, error) {
	var options []string
	for fileType := range cocoon.FileTypeModels {
		if _, ok := doc[fileType]; ok {
			options = append(options, fileType)
		}
	}
	if len(options) == 0 {
		return "", fmt.Errorf("the configuration declares no lintable file types")
	}
	sort.Strings(options)
	if len(options) == 1 {
		return options[0], nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "File type to verify:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func lint(s *schema.Schema, doc map[string]any, fileType string) error {
	model, ok := cocoon.FileTypeModels[fileType]
	if !ok {
		return fmt.Errorf("%s is not a supported file type", fileType)
	}
	if err := mapping.ValidateFileTypes(doc, []string{fileType}); err != nil {
		return err
	}
	section, err := mapping.FileTypeSection(doc, fileType)
	if err != nil {
		return err
	}
	required, _ := section[mapping.SectionRequired].(map[string]any)
	return s.VerifyRequiredMapped(required, model, cocoon.DefaultExemptAttributes)
}
