package cli

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid plain",
			cfg:  Config{Pattern: "duck", Paths: []string{"do"}},
		},
		{
			name: "valid highlight",
			cfg:  Config{Pattern: "duck", Paths: []string{"do"}, Highlight: true},
		},
		{
			name: "valid machine",
			cfg:  Config{Pattern: "duck", Paths: []string{"do"}, Machine: true},
		},
		{
			name:    "highlight and machine together",
			cfg:     Config{Pattern: "duck", Paths: []string{"do"}, Highlight: true, Machine: true},
			wantErr: true,
		},
		{
			name:    "no pattern",
			cfg:     Config{Paths: []string{"do"}},
			wantErr: true,
		},
		{
			name:    "no files",
			cfg:     Config{Pattern: "duck"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
