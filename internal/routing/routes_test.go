package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want Category
	}{
		{"/", CategoryHome},
		{"/home", CategoryHome},
		{"/admin", CategoryAdmin},
		{"/admin/users", CategoryAdmin},
		{"/admin/investments", CategoryAdmin},
		{"/dashboard", CategoryProtected},
		{"/portfolio", CategoryProtected},
		{"/transactions", CategoryProtected},
		{"/crypto", CategoryProtected},
		{"/exchange", CategoryProtected},
		{"/settings", CategoryProtected},
		{"/rewards", CategoryProtected},
		{"/referrals", CategoryProtected},
		{"/dashboard/overview", CategoryProtected},
		{"/login", CategoryPublic},
		{"/register", CategoryPublic},
		{"/about", CategoryPublic},
		{"/pricing", CategoryPublic},
		{"", CategoryPublic},
		{"no-leading-slash", CategoryPublic},
		{"/adminx", CategoryPublic},
		{"/dashboards", CategoryPublic},
		{"/home/extra", CategoryPublic},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.path), "Classify(%q)", c.path)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for _, path := range []string{"/", "/admin/users", "/dashboard", "/anything"} {
		first := Classify(path)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Classify(path), "Classify(%q) changed between calls", path)
		}
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "home", CategoryHome.String())
	assert.Equal(t, "admin", CategoryAdmin.String())
	assert.Equal(t, "protected", CategoryProtected.String())
	assert.Equal(t, "public", CategoryPublic.String())
	assert.Equal(t, "public", Category(99).String())
}
