// Package model declares the server inventory records bound by yamlbind.
package model

import yamlbind "github.com/reoring/yamlbind"

// Server is the document root.
type Server struct {
	Name  string `yaml:"name" json:"name"`
	Hosts []Host `yaml:"hosts" json:"hosts"`
}

type Host struct {
	HostID string `yaml:"hostid" json:"hostid"`
	Name   string `yaml:"name" json:"name"`
	Items  []Item `yaml:"items" json:"items"`
}

// Item is a monitored key with its validity window.
type Item struct {
	ItemID    string                 `yaml:"itemid" json:"itemid"`
	Key       string                 `yaml:"key" json:"key"`
	StartDate yamlbind.LocalDateTime `yaml:"startDate" json:"startDate"`
	EndDate   yamlbind.LocalDateTime `yaml:"endDate" json:"endDate"`
}
