package reference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"master-reference/core/database"
	"master-reference/core/storage"
	"master-reference/core/table"
	"master-reference/feature/reference/models"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"gorm.io/gorm"
)

// ErrTableOutput is returned when the output location is a SQL table.
var ErrTableOutput = errors.New("output to a database table is not supported")

const csvContentType = "text/csv"

// Service loads the reference sources, builds the master reference and writes it.
type Service struct {
	client   storage.Client
	db       *gorm.DB
	logger   *zap.Logger
	cfg      Config
	opts     Options
	fallback encoding.Encoding
}

// NewService creates a new reference service. client and db may be nil when no
// configured location needs them.
func NewService(cfg Config, client storage.Client, db *gorm.DB, logger *zap.Logger) (*Service, error) {
	var fallback encoding.Encoding
	if cfg.FallbackEncoding != "" {
		enc, err := table.LookupEncoding(cfg.FallbackEncoding)
		if err != nil {
			return nil, err
		}
		fallback = enc
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		client:   client,
		db:       db,
		logger:   logger,
		cfg:      cfg,
		opts:     DefaultOptions(),
		fallback: fallback,
	}, nil
}

// Locations parses every configured location, inputs first and output last.
func (s *Service) Locations() ([]storage.Location, error) {
	raws := []string{s.cfg.Sirca, s.cfg.SecRef, s.cfg.Master, s.cfg.Output}
	out := make([]storage.Location, len(raws))
	for i, raw := range raws {
		loc, err := storage.ParseLocation(raw)
		if err != nil {
			return nil, err
		}
		out[i] = loc
	}
	return out, nil
}

// LoadTable reads one source. Files and objects are decoded as UTF-8 or the
// fallback encoding before parsing; tables are scanned directly.
func (s *Service) LoadTable(ctx context.Context, raw string) (*table.Table, error) {
	loc, err := storage.ParseLocation(raw)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch loc.Kind {
	case storage.KindTable:
		return database.LoadTable(ctx, s.db, loc.Table)
	case storage.KindObject:
		if s.client == nil {
			return nil, fmt.Errorf("object storage is not configured for %s", raw)
		}
		data, err = storage.Fetch(ctx, s.client, loc.Bucket, loc.Key)
	default:
		data, err = os.ReadFile(loc.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", raw, err)
	}

	text, enc, err := table.Decode(data, s.fallback)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", raw, err)
	}

	t, err := table.ReadCSV(raw, bytes.NewReader(text))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Decoded source", zap.String("source", raw), zap.String("encoding", enc))
	return t, nil
}

// LoadInputs reads and types the three sources.
func (s *Service) LoadInputs(ctx context.Context) (*Inputs, error) {
	sirca, err := s.load(ctx, s.cfg.Sirca, models.SecurityColumns)
	if err != nil {
		return nil, err
	}
	secref, err := s.load(ctx, s.cfg.SecRef, models.ShareClassColumns)
	if err != nil {
		return nil, err
	}
	master, err := s.load(ctx, s.cfg.Master, models.CompanyColumns)
	if err != nil {
		return nil, err
	}

	return &Inputs{
		Securities:   models.NewSecurities(sirca),
		ShareClasses: models.NewShareClasses(secref),
		Companies:    models.NewCompanies(master),
	}, nil
}

func (s *Service) load(ctx context.Context, raw string, required []string) (*table.Table, error) {
	t, err := s.LoadTable(ctx, raw)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Loaded source",
		zap.String("source", raw),
		zap.Int("rows", len(t.Rows)),
		zap.Int("columns", t.Schema.Len()),
	)
	if t.Ragged > 0 {
		s.logger.Warn("Source has records with a different width than its header",
			zap.String("source", raw),
			zap.Int("records", t.Ragged),
		)
	}
	if missing := models.MissingColumns(t.Schema, required); len(missing) > 0 && t.Schema.Len() > 0 {
		s.logger.Warn("Source is missing join columns, they are read as empty",
			zap.String("source", raw),
			zap.Strings("columns", missing),
		)
	}
	return t, nil
}

// Build loads the sources and runs the three joins.
func (s *Service) Build(ctx context.Context) (*Result, error) {
	in, err := s.LoadInputs(ctx)
	if err != nil {
		return nil, err
	}

	result := Build(in, s.opts)

	for _, st := range result.Stages {
		s.logger.Info("Join stage finished",
			zap.String("stage", st.Stage),
			zap.Int("matched", st.Matched),
			zap.Int("unmatched", st.Unmatched()),
			zap.Int("total", st.Total),
		)
		if n := result.Shadowed[st.Stage]; n > 0 {
			s.logger.Warn("Duplicate join keys ignored, first row wins",
				zap.String("stage", st.Stage),
				zap.Int("rows", n),
			)
		}
	}
	for _, col := range result.Plan.Appended {
		s.logger.Info("Including additional SIRCA column", zap.String("column", col))
	}
	if len(result.Plan.Dropped) > 0 {
		s.logger.Debug("Output columns not present in any source", zap.Strings("columns", result.Plan.Dropped))
	}

	return result, nil
}

// Encode renders a result as CSV.
func Encode(result *Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := table.WriteCSV(&buf, result.Columns(), result.Records()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores the result at the configured output location. The whole
// output is rendered before anything is written.
func (s *Service) Write(ctx context.Context, result *Result) error {
	data, err := Encode(result)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	loc, err := storage.ParseLocation(s.cfg.Output)
	if err != nil {
		return err
	}

	switch loc.Kind {
	case storage.KindTable:
		return ErrTableOutput
	case storage.KindObject:
		if s.client == nil {
			return fmt.Errorf("object storage is not configured for %s", s.cfg.Output)
		}
		err = storage.Upload(ctx, s.client, loc.Bucket, loc.Key, data, csvContentType)
	default:
		err = writeFile(loc.Path, data)
	}
	if err != nil {
		return err
	}

	s.logger.Info("Output written", zap.String("output", s.cfg.Output), zap.Int("bytes", len(data)))
	return nil
}

// outputFileMode applies to new output files. An existing file keeps its mode.
const outputFileMode os.FileMode = 0o644

// writeFile replaces path atomically through a temporary file in the same directory.
func writeFile(path string, data []byte) error {
	mode := outputFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary output: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set output permissions: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
