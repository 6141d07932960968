package processor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/snonux/locconv/internal/archive"
	"codeberg.org/snonux/locconv/internal/cli"
	"codeberg.org/snonux/locconv/internal/mapfile"
	"codeberg.org/snonux/locconv/internal/schema"
	"codeberg.org/snonux/locconv/internal/tabular"
	"codeberg.org/snonux/locconv/internal/translation"
)

// Processor runs one conversion between a tabular file and a directory of
// mapping files
type Processor struct {
	flags      *cli.Flags
	classifier *schema.Classifier
	codec      mapfile.Codec
	logger     zerolog.Logger
}

// NewProcessor creates a processor for the given flags
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	codec, err := mapfile.NewCodec(flags.Format)
	if err != nil {
		return nil, err
	}

	return &Processor{
		flags:      flags,
		classifier: schema.NewClassifier(flags.IDColumns),
		codec:      codec,
		logger:     log.With().Str("sys", "processor").Logger(),
	}, nil
}

// Run executes the pipeline selected by the flags
func (p *Processor) Run(ctx context.Context, from string) error {
	if err := p.flags.ValidateMode(); err != nil {
		return err
	}

	if p.flags.ToJSON != "" {
		return p.ConvertToMappings(ctx, from, p.flags.ToJSON)
	}
	return p.ConvertToTabular(ctx, from, p.flags.ToCSV)
}

// ConvertToMappings reads the tabular file from and writes one mapping file
// per locale into the directory to
func (p *Processor) ConvertToMappings(ctx context.Context, from, to string) error {
	table, err := tabular.ReadFile(from)
	if err != nil {
		return fmt.Errorf("failed to read tabular file: %w", err)
	}

	if len(table.Rows) == 0 {
		return fmt.Errorf("%w: %s has no data rows", translation.ErrEmptyInput, from)
	}

	classification, err := p.classifier.Classify(table.Columns)
	if err != nil {
		return fmt.Errorf("failed to classify columns of %s: %w", from, err)
	}

	p.logger.Debug().
		Str("id_column", classification.IDColumn).
		Strs("locales", classification.Locales).
		Msg("Classified header")

	catalog, err := ToMappings(table, classification, p.logger)
	if err != nil {
		return fmt.Errorf("failed to build locale mappings: %w", err)
	}

	if err := p.archiveExisting(to); err != nil {
		return err
	}

	if err := mapfile.NewWriter(p.codec, log.Logger).WriteDir(ctx, to, catalog); err != nil {
		return fmt.Errorf("failed to write locale files: %w", err)
	}

	p.logger.Info().
		Int("rows", len(table.Rows)).
		Int("locales", catalog.Len()).
		Str("dir", to).
		Msg("Wrote locale files")
	return nil
}

// ConvertToTabular reads every mapping file in the directory from and writes
// a single tabular file to. An empty directory is not an error; nothing is
// written in that case.
func (p *Processor) ConvertToTabular(ctx context.Context, from, to string) error {
	catalog, err := mapfile.NewReader(p.codec, log.Logger).ReadDir(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to read locale files: %w", err)
	}

	if catalog.Len() == 0 {
		p.logger.Warn().Str("file", to).Msg("Nothing to convert, output not written")
		return nil
	}

	table, err := ToRows(catalog)
	if err != nil {
		return fmt.Errorf("failed to build rows: %w", err)
	}

	if err := p.archiveExisting(to); err != nil {
		return err
	}

	if err := tabular.WriteFile(to, table); err != nil {
		return fmt.Errorf("failed to write tabular file: %w", err)
	}

	p.logger.Info().
		Int("keys", len(table.Rows)).
		Int("locales", catalog.Len()).
		Str("file", to).
		Msg("Wrote tabular file")
	return nil
}

func (p *Processor) archiveExisting(path string) error {
	if !p.flags.Archive {
		return nil
	}

	archived, err := archive.Existing(path)
	if err != nil {
		return fmt.Errorf("failed to archive previous output: %w", err)
	}
	if archived != "" {
		p.logger.Info().Str("from", path).Str("to", archived).Msg("Archived previous output")
	}
	return nil
}
