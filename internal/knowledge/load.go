package knowledge

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/schemas"
)

//go:embed data/*.json
var embedded embed.FS

const (
	skillsFile      = "skills.json"
	profilesFile    = "job_profiles.json"
	salariesFile    = "salaries.json"
	certsFile       = "certifications.json"
	progressionFile = "progression.json"
)

// DataError reports that a knowledge-base file failed to load or validate.
// Any DataError is fatal: the analyzer never runs on a partial knowledge
// base.
type DataError struct {
	File  string
	Cause error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("knowledge data %s: %v", e.File, e.Cause)
}

func (e *DataError) Unwrap() error {
	return e.Cause
}

// Load builds the registry from the embedded datasets.
func Load(logger *zap.Logger) (*Registry, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, &DataError{File: "data", Cause: err}
	}
	return load(sub, logger)
}

// LoadDir builds the registry from JSON files in dir instead of the embedded
// copies. The directory must contain the full set of data files.
func LoadDir(dir string, logger *zap.Logger) (*Registry, error) {
	return load(os.DirFS(dir), logger)
}

func load(fsys fs.FS, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New()

	r := &Registry{
		byName:  make(map[string]*types.Skill),
		byAlias: make(map[string]*types.Skill),
		byRole:  make(map[string]*types.JobProfile),
	}

	if err := readInto(fsys, skillsFile, "skills.schema.json", &r.skills); err != nil {
		return nil, err
	}
	for i := range r.skills {
		if err := v.Struct(&r.skills[i]); err != nil {
			return nil, &DataError{File: skillsFile, Cause: err}
		}
	}
	r.indexSkills(logger)

	if err := readInto(fsys, profilesFile, "job_profiles.schema.json", &r.profiles); err != nil {
		return nil, err
	}
	for i := range r.profiles {
		p := &r.profiles[i]
		if err := v.Struct(p); err != nil {
			return nil, &DataError{File: profilesFile, Cause: err}
		}
		if err := checkBand(p.Salary); err != nil {
			return nil, &DataError{File: profilesFile, Cause: fmt.Errorf("profile %q: %w", p.Role, err)}
		}
		if p.Education != "" && types.ParseEducationLevel(p.Education) == types.EducationNone && p.Education != "none" {
			return nil, &DataError{File: profilesFile, Cause: fmt.Errorf("profile %q: unknown education level %q", p.Role, p.Education)}
		}
		key := strings.ToLower(p.Role)
		if prev, taken := r.byRole[key]; taken {
			logger.Warn("duplicate job profile role, keeping first",
				zap.String("role", p.Role),
				zap.String("kept", prev.Role))
			continue
		}
		r.byRole[key] = p
	}

	if err := readInto(fsys, salariesFile, "salaries.schema.json", &r.salaries); err != nil {
		return nil, err
	}
	for industry, table := range r.salaries {
		if len(table.Levels) == 0 {
			return nil, &DataError{File: salariesFile, Cause: fmt.Errorf("industry %q has no levels", industry)}
		}
		for level, band := range table.Levels {
			if err := checkBand(band); err != nil {
				return nil, &DataError{File: salariesFile, Cause: fmt.Errorf("%s/%s: %w", industry, level, err)}
			}
		}
	}

	if err := readInto(fsys, certsFile, "certifications.schema.json", &r.certs); err != nil {
		return nil, err
	}
	if err := readInto(fsys, progressionFile, "progression.schema.json", &r.tracks); err != nil {
		return nil, err
	}

	logger.Info("knowledge base loaded",
		zap.Int("skills", len(r.skills)),
		zap.Int("profiles", len(r.profiles)),
		zap.Int("industries", len(r.salaries)))
	return r, nil
}

// indexSkills builds the name and alias lookup tables. On collision the
// first registered entry wins and the loser is logged.
func (r *Registry) indexSkills(logger *zap.Logger) {
	for i := range r.skills {
		s := &r.skills[i]
		key := strings.ToLower(s.Name)
		if prev, taken := r.byName[key]; taken {
			logger.Warn("duplicate skill name, keeping first",
				zap.String("name", s.Name),
				zap.String("kept", prev.Name))
			continue
		}
		r.byName[key] = s
	}
	for i := range r.skills {
		s := &r.skills[i]
		for _, alias := range s.Aliases {
			key := strings.ToLower(alias)
			if prev, taken := r.byName[key]; taken {
				logger.Warn("skill alias shadows a canonical name, ignoring",
					zap.String("alias", alias),
					zap.String("skill", s.Name),
					zap.String("kept", prev.Name))
				continue
			}
			if prev, taken := r.byAlias[key]; taken {
				logger.Warn("duplicate skill alias, keeping first",
					zap.String("alias", alias),
					zap.String("skill", s.Name),
					zap.String("kept", prev.Name))
				continue
			}
			r.byAlias[key] = s
		}
	}
}

func readInto(fsys fs.FS, name, schema string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return &DataError{File: name, Cause: err}
	}
	if err := schemas.Validate(schema, raw); err != nil {
		return &DataError{File: name, Cause: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DataError{File: name, Cause: err}
	}
	return nil
}

func checkBand(b types.SalaryBand) error {
	if b.Min > b.Avg || b.Avg > b.Max {
		return fmt.Errorf("salary band not ordered: min=%.0f avg=%.0f max=%.0f", b.Min, b.Avg, b.Max)
	}
	return nil
}

// UnmarshalJSON splits the industry object into level bands and the
// reserved "locations" multiplier map.
func (t *IndustryTable) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Levels = make(map[string]types.SalaryBand, len(raw))
	for key, msg := range raw {
		if key == "locations" {
			if err := json.Unmarshal(msg, &t.Locations); err != nil {
				return err
			}
			continue
		}
		var band types.SalaryBand
		if err := json.Unmarshal(msg, &band); err != nil {
			return err
		}
		t.Levels[key] = band
	}
	return nil
}
