package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStringValue(t *testing.T) {
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "my-app", StringValue(Stringify("my-app")))
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		expects string
	}{
		{
			name:    "long secret keeps its tail",
			secret:  "supersecrettoken",
			expects: "************oken",
		},
		{
			name:    "short secret fully masked",
			secret:  "abc",
			expects: "***",
		},
		{
			name:    "empty secret stays empty",
			secret:  "",
			expects: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects, MaskSecret(tt.secret))
		})
	}
}

func TestStringContains(t *testing.T) {
	assert.True(t, StringContains([]string{"ios", "android"}, "ios"))
	assert.False(t, StringContains([]string{"ios", "android"}, "windows"))
	assert.False(t, StringContains(nil, "ios"))
}

func TestGetBytes(t *testing.T) {
	assert.Equal(t, []byte(`{"slug":"my-app"}`), GetBytes(map[string]interface{}{"slug": "my-app"}))
	assert.Nil(t, GetBytes(make(chan int)))
}
