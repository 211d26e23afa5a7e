package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " snapbridge ")
	t.Setenv("LOG_LEVEL", " debug ")

	root := New()
	log := root.Prefix("LOG_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root hit", conf: root, key: "APP_NAME", def: "x", want: "snapbridge"},
		{name: "prefixed hit", conf: log, key: "LEVEL", def: "x", want: "debug"},
		{name: "missing returns default", conf: log, key: "MISSING", def: "defv", want: "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")
	t.Setenv("B_T1", "true")
	t.Setenv("B_T2", "1")
	t.Setenv("B_T3", " YES ")
	t.Setenv("B_F1", "false")
	t.Setenv("B_F2", "nah")

	cases := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"MISSING", true, true},
	}
	for _, tc := range cases {
		if got := c.GetBool(tc.key, tc.def); got != tc.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("N_")
	t.Setenv("N_OK", " 42 ")
	t.Setenv("N_NEG", "-3")
	t.Setenv("N_BAD", "4x")

	if got := c.GetInt("OK", 1); got != 42 {
		t.Fatalf("GetInt ok = %d", got)
	}
	if got := c.GetInt("NEG", 1); got != 1 {
		t.Fatalf("GetInt negative should fall back, got %d", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt bad should fall back, got %d", got)
	}
	if got := c.GetInt("MISSING", 9); got != 9 {
		t.Fatalf("GetInt missing should fall back, got %d", got)
	}
}
