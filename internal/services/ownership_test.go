package services

import (
	"testing"

	"bloghub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	owner := models.Principal{ID: 7, Username: "owner"}
	other := models.Principal{ID: 8, Username: "other"}

	var missingBlog *models.Blog
	var missingComment *models.Comment

	testCases := []struct {
		name      string
		principal models.Principal
		resource  Owned
		expected  bool
	}{
		{"blog creator", owner, &models.Blog{CreatedBy: 7}, true},
		{"blog non-creator", other, &models.Blog{CreatedBy: 7}, false},
		{"comment author", owner, &models.Comment{UserID: 7}, true},
		{"comment non-author", other, &models.Comment{UserID: 7}, false},
		{"nil blog", owner, missingBlog, false},
		{"nil comment", owner, missingComment, false},
		{"nil interface", owner, nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsOwner(tc.principal, tc.resource))
		})
	}
}
