package role

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		username string
		admin    string
		want     Role
	}{
		{name: "anonymous", username: "", admin: "root", want: RoleAnonymous},
		{name: "admin", username: "root", admin: "root", want: RoleAdmin},
		{name: "user", username: "chef", admin: "root", want: RoleUser},
		{name: "admin disabled", username: "root", admin: "", want: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Of(tt.username, tt.admin)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if got.SeesAllRecipes() != (tt.want == RoleAdmin) {
				t.Errorf("unexpected SeesAllRecipes for %s", got)
			}
		})
	}
}
