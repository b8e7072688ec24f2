package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"revshare-calculator/domain"
)

type rboCatalogFile struct {
	Projects []domain.RBOInvestment `yaml:"projects"`
}

// DefaultRBOCatalog lists the funded projects (pre-tax investment, yuan) in
// display order.
func DefaultRBOCatalog() []domain.RBOInvestment {
	return []domain.RBOInvestment{
		{Code: "RT-CN3101-SHWS0001-I", Name: "浦东机场（DRC）", Investment: 2900000, Order: 1},
		{Code: "OT-CN0100-PAWSV0002", Name: "西安机场", Investment: 1700000, Order: 2},
		{Code: "RT-CN0100-PAWSV0001", Name: "南京机场", Investment: 2650000, Order: 3},
		{Code: "SV-CN0100-AURABJYX0001", Name: "澳尔医院", Investment: 1980000, Order: 4},
	}
}

// LoadRBOCatalog reads a YAML catalog. An empty path yields the default.
func LoadRBOCatalog(path string) ([]domain.RBOInvestment, error) {
	if path == "" {
		return DefaultRBOCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rbo catalog: %w", err)
	}

	var file rboCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rbo catalog %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Projects))
	for i, p := range file.Projects {
		if p.Code == "" {
			return nil, fmt.Errorf("rbo catalog entry %d: code is required", i)
		}
		if seen[p.Code] {
			return nil, fmt.Errorf("rbo catalog: duplicate code %s", p.Code)
		}
		if p.Investment < 0 {
			return nil, fmt.Errorf("rbo catalog %s: negative investment", p.Code)
		}
		seen[p.Code] = true
	}
	return file.Projects, nil
}
