// Package seed loads categories, options and sample entities from a YAML file.
// Everything goes through the services, so seeded rows obey the same rules as
// API writes, and a second run only adds what is missing.
package seed

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	apperrors "hostel-directory-backend/internal/errors"
	"hostel-directory-backend/internal/logger"
	"hostel-directory-backend/internal/service"
	"hostel-directory-backend/internal/tagging"

	"gopkg.in/yaml.v3"
)

// File is the layout of a seed file
type File struct {
	Categories []CategoryData `yaml:"categories"`
	Hostels    []HostelData   `yaml:"hostels,omitempty"`
	Projects   []ProjectData  `yaml:"projects,omitempty"`
}

type CategoryData struct {
	Name           string   `yaml:"name"`
	SentinelOption string   `yaml:"sentinel_option,omitempty"`
	Options        []string `yaml:"options"`
}

type HostelData struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Location     string            `yaml:"location"`
	Address      string            `yaml:"address,omitempty"`
	PhoneNumber  string            `yaml:"phone_number,omitempty"`
	Email        string            `yaml:"email,omitempty"`
	Website      string            `yaml:"website,omitempty"`
	PriceRange   string            `yaml:"price_range,omitempty"`
	Tags         map[string]string `yaml:"tags,omitempty"`
	CustomValues map[string]string `yaml:"custom_values,omitempty"`
}

type ProjectData struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Link         string            `yaml:"link,omitempty"`
	Members      []MemberData      `yaml:"members,omitempty"`
	Tags         map[string]string `yaml:"tags,omitempty"`
	CustomValues map[string]string `yaml:"custom_values,omitempty"`
}

type MemberData struct {
	Name     string `yaml:"name"`
	LinkedIn string `yaml:"linkedin,omitempty"`
}

// Summary counts what a run created
type Summary struct {
	CategoriesCreated int
	OptionsAdded      int
	HostelsCreated    int
	ProjectsCreated   int
	// Failed lists entities that could not be created; the run carries on past them
	Failed []string
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.ErrSeedFileMissing
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &file, nil
}

// Seeder writes a File through the services
type Seeder struct {
	categories service.CategoryServiceInterface
	hostels    service.HostelServiceInterface
	projects   service.ProjectServiceInterface
}

// NewSeeder creates a new seeder
func NewSeeder(categories service.CategoryServiceInterface, hostels service.HostelServiceInterface, projects service.ProjectServiceInterface) *Seeder {
	return &Seeder{
		categories: categories,
		hostels:    hostels,
		projects:   projects,
	}
}

// Run seeds categories first so the sample entities can be tagged. A category
// failure stops the run; entity failures are logged and collected.
func (s *Seeder) Run(ctx context.Context, file *File) (*Summary, error) {
	log := logger.WithContext(ctx)
	summary := &Summary{}

	if err := s.seedCategories(ctx, file.Categories, summary); err != nil {
		return summary, err
	}
	log.Infof("Categories: %d created, %d options added, %d total", summary.CategoriesCreated, summary.OptionsAdded, len(file.Categories))

	if err := s.seedHostels(ctx, file.Hostels, summary); err != nil {
		return summary, err
	}
	log.Infof("Hostels: %d created, %d total", summary.HostelsCreated, len(file.Hostels))

	if err := s.seedProjects(ctx, file.Projects, summary); err != nil {
		return summary, err
	}
	log.Infof("Projects: %d created, %d total", summary.ProjectsCreated, len(file.Projects))

	return summary, nil
}

func (s *Seeder) seedCategories(ctx context.Context, categories []CategoryData, summary *Summary) error {
	existing, err := s.categories.ListCategories(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]service.CategoryResponse, len(existing))
	for _, c := range existing {
		byName[c.CategoryName] = c
	}

	for _, data := range categories {
		current, ok := byName[strings.TrimSpace(data.Name)]
		if !ok {
			options := make([]service.OptionInput, len(data.Options))
			for i, name := range data.Options {
				options[i] = service.OptionInput{OptionName: name}
			}
			if _, err := s.categories.CreateCategory(ctx, &service.CreateCategoryRequest{
				CategoryName:   data.Name,
				Options:        options,
				SentinelOption: data.SentinelOption,
			}); err != nil {
				return fmt.Errorf("failed to create category %s: %w", data.Name, err)
			}
			summary.CategoriesCreated++
			continue
		}

		if err := s.completeCategory(ctx, current, data, summary); err != nil {
			return err
		}
	}
	return nil
}

// completeCategory adds options missing from an existing category and sets its sentinel
func (s *Seeder) completeCategory(ctx context.Context, current service.CategoryResponse, data CategoryData, summary *Summary) error {
	have := make(map[string]bool, len(current.Options))
	for _, o := range current.Options {
		have[o.OptionName] = true
	}
	for _, name := range data.Options {
		if have[strings.TrimSpace(name)] {
			continue
		}
		if _, err := s.categories.AddOption(ctx, current.CategoryID, &service.OptionRequest{OptionName: name}); err != nil {
			return fmt.Errorf("failed to add option %s to %s: %w", name, data.Name, err)
		}
		summary.OptionsAdded++
	}

	if data.SentinelOption != "" && data.SentinelOption != current.SentinelOption {
		sentinel := data.SentinelOption
		if _, err := s.categories.UpdateCategory(ctx, current.CategoryID, &service.UpdateCategoryRequest{
			CategoryName:   current.CategoryName,
			SentinelOption: &sentinel,
		}); err != nil {
			return fmt.Errorf("failed to set sentinel of %s: %w", data.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedHostels(ctx context.Context, hostels []HostelData, summary *Summary) error {
	if len(hostels) == 0 {
		return nil
	}
	existing, err := s.hostels.List(ctx, nil)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		seen[h.Name] = true
	}

	for _, data := range hostels {
		if seen[strings.TrimSpace(data.Name)] {
			continue
		}
		resp, err := s.hostels.Create(ctx, &service.CreateHostelRequest{
			Name:         data.Name,
			Description:  data.Description,
			Location:     data.Location,
			Address:      data.Address,
			PhoneNumber:  data.PhoneNumber,
			Email:        data.Email,
			Website:      data.Website,
			PriceRange:   data.PriceRange,
			Categories:   toPairs(data.Tags),
			CustomValues: data.CustomValues,
		})
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warnf("failed to create hostel %s", data.Name)
			summary.Failed = append(summary.Failed, "hostel "+data.Name)
			continue
		}
		warnUnresolved(ctx, "hostel "+data.Name, resp.TagResults)
		summary.HostelsCreated++
	}
	return nil
}

func (s *Seeder) seedProjects(ctx context.Context, projects []ProjectData, summary *Summary) error {
	if len(projects) == 0 {
		return nil
	}
	existing, err := s.projects.List(ctx, nil)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Name] = true
	}

	for _, data := range projects {
		if seen[strings.TrimSpace(data.Name)] {
			continue
		}
		members := make([]service.TeamMemberRequest, len(data.Members))
		for i, m := range data.Members {
			members[i] = service.TeamMemberRequest{Name: m.Name, LinkedIn: m.LinkedIn}
		}
		resp, err := s.projects.Create(ctx, &service.CreateProjectRequest{
			Name:         data.Name,
			Description:  data.Description,
			Link:         data.Link,
			Members:      members,
			Categories:   toPairs(data.Tags),
			CustomValues: data.CustomValues,
		})
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warnf("failed to create project %s", data.Name)
			summary.Failed = append(summary.Failed, "project "+data.Name)
			continue
		}
		warnUnresolved(ctx, "project "+data.Name, resp.TagResults)
		summary.ProjectsCreated++
	}
	return nil
}

// toPairs turns a category->option map into pairs ordered by category
func toPairs(tags map[string]string) []tagging.Pair {
	pairs := make([]tagging.Pair, 0, len(tags))
	for category, option := range tags {
		pairs = append(pairs, tagging.Pair{CategoryName: category, OptionName: option})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].CategoryName < pairs[j].CategoryName })
	return pairs
}

func warnUnresolved(ctx context.Context, what string, results []tagging.Result) {
	for _, r := range results {
		if !r.Status.Applied() {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"category": r.CategoryName,
				"option":   r.OptionName,
				"status":   r.Status,
			}).Warnf("seed tag for %s not applied", what)
		}
	}
}
