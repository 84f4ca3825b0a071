package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
)

// FS stores graded captures as JSON files under <dir>/<tier>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func tierDir(d domain.Difficulty) string {
	return strings.ToLower(d.String())
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, tierDir(d), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, c *domain.Capture) error {
	if c == nil {
		return errors.New("invalid capture: nil")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	target := s.pathFor(c.ID, c.Report.Tier)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Capture, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("invalid capture: missing ID")
	}
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Capture
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.CaptureMeta, error) {
	var out []domain.CaptureMeta
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		dir := filepath.Join(s.dir, tierDir(d))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var c domain.Capture
			if err := json.Unmarshal(data, &c); err != nil || c.ID == "" {
				continue
			}
			out = append(out, domain.CaptureMeta{
				ID:        c.ID,
				Source:    c.Source,
				Tier:      c.Report.Tier,
				Score:     c.Report.Score,
				CreatedAt: c.CreatedAt,
			})
		}
	}
	return out, nil
}
