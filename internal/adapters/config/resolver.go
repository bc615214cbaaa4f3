// Package config resolves the CI configuration of a flake.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Resolver implements ports.ConfigResolver.
//
// The config tree comes from exactly one source: the om.yaml sidecar at the
// root of a local flake when it exists, the evaluated om attribute otherwise.
type Resolver struct {
	evaluator ports.FlakeEvaluator
	logger    ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(evaluator ports.FlakeEvaluator, logger ports.Logger) *Resolver {
	return &Resolver{evaluator: evaluator, logger: logger}
}

// Resolve loads the config tree of ref and selects the CI variant named by
// the first attribute segment. Remaining segments are returned in Rest.
func (r *Resolver) Resolve(ctx context.Context, ref domain.FlakeURL) (*domain.ResolvedConfig, error) {
	base, attrs := ref.SplitAttr()

	tree, source, err := r.load(ctx, base)
	if err != nil {
		return nil, err
	}

	variants, err := ciVariants(tree)
	if err != nil {
		return nil, zerr.With(err, "source", source.String())
	}
	if variants == nil {
		r.logger.Info(fmt.Sprintf("no %s configuration in %s, building the whole flake", domain.CINamespace, source))
		source = domain.SourceDefault
		variants = map[string]yaml.Node{domain.DefaultVariant: {}}
	}

	name, err := selectVariant(variants, attrs)
	if err != nil {
		return nil, zerr.With(err, "flake", ref.String())
	}

	units, err := decodeUnits(variants[name])
	if err != nil {
		return nil, zerr.With(zerr.With(err, "variant", name), "source", source.String())
	}

	var rest []string
	if len(attrs) > 1 {
		rest = attrs[1:]
	}
	return domain.NewResolvedConfig(source, name, units, rest), nil
}

// load returns the raw om tree of flake and the source it was read from.
// A nil tree means the source exists but is empty.
func (r *Resolver) load(ctx context.Context, flake domain.FlakeURL) (map[string]yaml.Node, domain.ConfigSource, error) {
	if dir, ok := flake.LocalPath(); ok {
		path := filepath.Join(dir, domain.SidecarFileName)
		data, err := os.ReadFile(path) //nolint:gosec // path is derived from the flake reference
		switch {
		case err == nil:
			tree, err := decodeTree(data)
			if err != nil {
				return nil, domain.SourceSidecar, zerr.With(err, "path", path)
			}
			return tree, domain.SourceSidecar, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, domain.SourceSidecar, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	}

	data, found, err := r.evaluator.EvalJSON(ctx, flake.WithAttr(domain.ConfigAttribute))
	if err != nil {
		return nil, domain.SourceFlake, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if !found {
		return nil, domain.SourceFlake, nil
	}

	tree, err := decodeTree(data)
	if err != nil {
		return nil, domain.SourceFlake, zerr.With(err, "flake", flake.String())
	}
	return tree, domain.SourceFlake, nil
}

// decodeTree parses a YAML or JSON document into root key -> subtree.
func decodeTree(data []byte) (map[string]yaml.Node, error) {
	var tree map[string]yaml.Node
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return tree, nil
}

// ciVariants returns the variants under the CI namespace, or nil when absent.
func ciVariants(tree map[string]yaml.Node) (map[string]yaml.Node, error) {
	node, ok := tree[domain.CINamespace]
	if !ok || node.Tag == "!!null" {
		return nil, nil
	}

	var variants map[string]yaml.Node
	if err := node.Decode(&variants); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return variants, nil
}

// selectVariant picks the variant named by the first attribute segment, or
// the default one when there is no attribute path.
func selectVariant(variants map[string]yaml.Node, attrs []string) (string, error) {
	if len(attrs) > 0 {
		if _, ok := variants[attrs[0]]; !ok {
			return "", zerr.With(zerr.Wrap(domain.ErrUnexpectedAttribute, "no such config variant"), "attribute", attrs[0])
		}
		return attrs[0], nil
	}

	if _, ok := variants[domain.DefaultVariant]; ok {
		return domain.DefaultVariant, nil
	}
	if len(variants) == 1 {
		for name := range variants {
			return name, nil
		}
	}
	return "", zerr.With(
		zerr.Wrap(domain.ErrMissingConfigAttribute, "cannot pick a config variant"),
		"variants", slices.Sorted(maps.Keys(variants)),
	)
}

// decodeUnits converts a variant into units. An empty variant is the
// default config: one unit rooted at the flake.
func decodeUnits(node yaml.Node) ([]domain.Subflake, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return []domain.Subflake{domain.DefaultSubflake(domain.DefaultUnitName)}, nil
	}

	var dtos map[string]subflakeDTO
	if err := node.Decode(&dtos); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	units := make([]domain.Subflake, 0, len(dtos))
	for name, dto := range dtos {
		unit, err := toSubflake(name, dto)
		if err != nil {
			return nil, zerr.With(err, "subflake", name)
		}
		units = append(units, unit)
	}
	return units, nil
}

func toSubflake(name string, dto subflakeDTO) (domain.Subflake, error) {
	unit := domain.DefaultSubflake(name)
	unit.Skip = dto.Skip
	if dto.Dir != "" {
		unit.Dir = dto.Dir
	}
	unit.Systems = toFilter(dto.Systems)

	err := dto.OverrideInputs.each(func(input, url string) error {
		ref, err := domain.ParseFlakeURL(url)
		if err != nil {
			return zerr.With(err, "input", input)
		}
		unit.OverrideInputs = append(unit.OverrideInputs, domain.InputOverride{Name: input, URL: ref})
		return nil
	})
	if err != nil {
		return domain.Subflake{}, err
	}

	applyToggle(&unit.Steps.Lockfile, dto.Steps.Lockfile)
	applyToggle(&unit.Steps.FlakeCheck, dto.Steps.FlakeCheck)
	applyToggle(&unit.Steps.Build, dto.Steps.Build)

	err = dto.Steps.Custom.each(func(stepName string, c customStepDTO) error {
		step, err := toCustomStep(stepName, c)
		if err != nil {
			return err
		}
		unit.Steps.Custom = append(unit.Steps.Custom, step)
		return nil
	})
	if err != nil {
		return domain.Subflake{}, err
	}

	return unit, nil
}

func toCustomStep(name string, dto customStepDTO) (domain.CustomStep, error) {
	step := domain.CustomStep{
		Name:    name,
		Target:  dto.Name,
		Args:    dto.Args,
		Command: dto.Command,
		Systems: toFilter(dto.Systems),
	}

	switch dto.Type {
	case domain.CustomStepApp.String():
		step.Kind = domain.CustomStepApp
	case domain.CustomStepDevShell.String():
		step.Kind = domain.CustomStepDevShell
		if step.Target == "" {
			step.Target = domain.DefaultVariant
		}
	}

	if err := step.Validate(); err != nil {
		return domain.CustomStep{}, zerr.With(zerr.With(zerr.Wrap(err, "bad custom step"), "step", name), "type", dto.Type)
	}
	return step, nil
}

func applyToggle(toggle *domain.StepToggle, dto *toggleDTO) {
	if dto != nil && dto.Enable != nil {
		toggle.Enable = *dto.Enable
	}
}

func toFilter(systems *[]string) domain.SystemFilter {
	if systems == nil {
		return domain.AnySystem()
	}
	out := make([]domain.System, len(*systems))
	for i, s := range *systems {
		out[i] = domain.System(s)
	}
	return domain.OnlySystems(out...)
}

var _ ports.ConfigResolver = (*Resolver)(nil)
