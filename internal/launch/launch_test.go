package launch

import (
	"reflect"
	"testing"
)

func stubEnv(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func TestPlanFromEnv_DispatchTable(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantMode Mode
		wantArgs []string
	}{
		{
			"neither set",
			map[string]string{},
			ModeBatch,
			nil,
		},
		{
			"url only",
			map[string]string{EnvCollectionURL: "https://a"},
			ModeSingle,
			[]string{"https://a"},
		},
		{
			"output dir only",
			map[string]string{EnvOutputDir: "/media/out"},
			ModeBatch,
			[]string{"/media/out"},
		},
		{
			"both set",
			map[string]string{EnvCollectionURL: "https://a", EnvOutputDir: "/media/out"},
			ModeSingle,
			[]string{"https://a", "/media/out"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanFromEnv(stubEnv(tt.env))
			if plan.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", plan.Mode, tt.wantMode)
			}
			if !reflect.DeepEqual(plan.Args, tt.wantArgs) {
				t.Errorf("Args = %#v, want %#v", plan.Args, tt.wantArgs)
			}
		})
	}
}

func TestPlanFromEnv_WhitespaceTreatedAsUnset(t *testing.T) {
	plan := PlanFromEnv(stubEnv(map[string]string{
		EnvCollectionURL: "   ",
		EnvOutputDir:     "\t",
	}))
	if plan.Mode != ModeBatch || plan.Args != nil {
		t.Errorf("plan = %+v, want empty batch plan", plan)
	}
}

func TestPlanFromEnv_FieldsPopulated(t *testing.T) {
	plan := PlanFromEnv(stubEnv(map[string]string{
		EnvCollectionURL: "https://a",
		EnvOutputDir:     "/out",
	}))
	if plan.URL != "https://a" || plan.OutputDir != "/out" {
		t.Errorf("plan = %+v", plan)
	}
}
