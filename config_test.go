package piechart

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.viewboxWidth != 600 || cfg.viewboxHeight != 400 {
		t.Errorf("view box = %vx%v, want 600x400", cfg.viewboxWidth, cfg.viewboxHeight)
	}
	if cfg.padding != 0 || cfg.startAngle != 0 {
		t.Errorf("padding/startAngle = %v/%v, want 0/0", cfg.padding, cfg.startAngle)
	}
	if cfg.donut || cfg.donutWidth != 40 {
		t.Errorf("donut = %v width %v, want false width 40", cfg.donut, cfg.donutWidth)
	}
	if !cfg.showLabels || cfg.labelPosition != LabelInside || cfg.labelOffset != 0 {
		t.Errorf("label defaults = %v/%v/%v, want true/LabelInside/0",
			cfg.showLabels, cfg.labelPosition, cfg.labelOffset)
	}
	if cfg.hasTotal || cfg.hasShowRatio || cfg.hasCenter || cfg.hasRadius {
		t.Error("overrides set by default")
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := defaultConfig()
	opts := []Option{
		WithViewBox(800, 800),
		WithPadding(20),
		WithStartAngle(-90),
		WithTotal(100),
		WithShowRatio(0.5),
		WithDonut(),
		WithDonutWidth(60),
		WithLabels([]string{"a"}),
		WithLabelPosition(LabelOutside),
		WithLabelOffset(35),
		WithoutLabels(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.viewboxWidth != 800 || cfg.viewboxHeight != 800 {
		t.Errorf("view box = %vx%v", cfg.viewboxWidth, cfg.viewboxHeight)
	}
	if cfg.padding != 20 || cfg.startAngle != -90 {
		t.Errorf("padding/startAngle = %v/%v", cfg.padding, cfg.startAngle)
	}
	if !cfg.hasTotal || cfg.total != 100 {
		t.Errorf("total = %v (%v)", cfg.total, cfg.hasTotal)
	}
	if !cfg.hasShowRatio || cfg.showRatio != 0.5 {
		t.Errorf("showRatio = %v (%v)", cfg.showRatio, cfg.hasShowRatio)
	}
	if !cfg.donut || cfg.donutWidth != 60 {
		t.Errorf("donut = %v width %v", cfg.donut, cfg.donutWidth)
	}
	if cfg.showLabels || len(cfg.labels) != 1 || cfg.labelPosition != LabelOutside || cfg.labelOffset != 35 {
		t.Errorf("labels = %v/%v/%v/%v", cfg.showLabels, cfg.labels, cfg.labelPosition, cfg.labelOffset)
	}
}

func TestLabelRadiusStrategies(t *testing.T) {
	tests := []struct {
		name     string
		position LabelPosition
		offset   float64
		radius   float64
		want     float64
	}{
		{"inside", LabelInside, 0, 170, 85},
		{"inside offset", LabelInside, 10, 170, 95},
		{"outside", LabelOutside, 0, 170, 170},
		{"outside offset", LabelOutside, 35, 170, 205},
		{"center", LabelCenter, 0, 170, 0},
		{"center offset", LabelCenter, 12, 170, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.labelPosition = tt.position
			cfg.labelOffset = tt.offset
			if got := cfg.labelRadius(tt.radius); got != tt.want {
				t.Errorf("labelRadius(%v) = %v, want %v", tt.radius, got, tt.want)
			}
		})
	}
}
