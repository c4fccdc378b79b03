package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	enumsDesc = prometheus.NewDesc(
		"enumerated_catalog_enums",
		"Number of enums registered in the catalog.",
		nil, nil,
	)
	valuesDesc = prometheus.NewDesc(
		"enumerated_enum_values",
		"Number of values of each registered enum.",
		[]string{"enum"}, nil,
	)
)

// Collector exports catalog gauges to Prometheus. Values are read from the
// catalog on every scrape.
type Collector struct {
	catalog *Catalog
}

// NewCollector creates a Collector for c
func NewCollector(c *Catalog) *Collector {
	return &Collector{catalog: c}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- enumsDesc
	ch <- valuesDesc
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	enums := c.catalog.Enums()

	ch <- prometheus.MustNewConstMetric(enumsDesc, prometheus.GaugeValue, float64(len(enums)))
	for _, e := range enums {
		ch <- prometheus.MustNewConstMetric(valuesDesc, prometheus.GaugeValue, float64(e.Len()), e.Name())
	}
}
