// Package report renders validation results as text, JSON or YAML.
package report
