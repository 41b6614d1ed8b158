package sorter

import (
	"path/filepath"

	"github.com/sdejongh/sortnorris/pkg/catalog"
	"github.com/sdejongh/sortnorris/pkg/fileops"
	"github.com/sdejongh/sortnorris/pkg/models"
)

// Planner turns collected files into relocation plans
type Planner struct {
	targetDir string
	catalog   *catalog.Catalog
}

// NewPlanner creates a planner writing into category folders under targetDir
func NewPlanner(targetDir string, cat *catalog.Catalog) *Planner {
	return &Planner{
		targetDir: filepath.Clean(targetDir),
		catalog:   cat,
	}
}

// BuildPlans classifies each file and computes its prospective destination.
// The conflict flag records whether that exact destination already existed
// at plan time; it feeds the dry-run preview and is independent of the
// collision resolution applied during the actual move.
func (p *Planner) BuildPlans(files []string) []models.FilePlan {
	plans := make([]models.FilePlan, 0, len(files))

	for _, file := range files {
		category := p.Categorize(file)
		destination := filepath.Join(p.targetDir, category.FolderName(), filepath.Base(file))

		plans = append(plans, models.FilePlan{
			Source:      file,
			Destination: destination,
			Category:    category,
			HasConflict: fileops.Exists(destination),
		})
	}

	return plans
}

// Categorize classifies a single file by its extension. Files without an
// extension fall into the default category.
func (p *Planner) Categorize(file string) models.Category {
	ext, ok := fileops.Extension(file)
	if !ok {
		return p.catalog.DefaultCategory()
	}
	return p.catalog.Classify(ext)
}
