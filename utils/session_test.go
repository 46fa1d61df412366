package utils

import "testing"

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser string
		os      string
		device  string
	}{
		{
			name:    "desktop chrome",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			browser: "Chrome",
			os:      "Windows",
			device:  "Desktop",
		},
		{
			name:    "iphone safari",
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			browser: "Safari",
			os:      "iOS",
			device:  "iPhone",
		},
		{
			name:    "empty user agent",
			ua:      "",
			browser: "Unknown Browser",
			os:      "Unknown OS",
			device:  "Desktop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser, os, device := ParseUserAgent(tt.ua)
			if browser != tt.browser || os != tt.os || device != tt.device {
				t.Errorf("ParseUserAgent() = %q/%q/%q, want %q/%q/%q",
					browser, os, device, tt.browser, tt.os, tt.device)
			}
		})
	}
}

func TestGetLocationFromIPLocalAddresses(t *testing.T) {
	// These paths never hit the network.
	tests := []struct {
		ip   string
		want string
	}{
		{"", "Unknown Location"},
		{"127.0.0.1", "Local Network"},
		{"::1", "Local Network"},
		{"192.168.1.20", "Local Network"},
		{"10.0.0.5", "Local Network"},
	}
	for _, tt := range tests {
		got, err := GetLocationFromIP(tt.ip)
		if err != nil {
			t.Errorf("GetLocationFromIP(%q) returned error: %v", tt.ip, err)
		}
		if got != tt.want {
			t.Errorf("GetLocationFromIP(%q) = %q, want %q", tt.ip, got, tt.want)
		}
	}
}

func TestGenerateSessionName(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	if got := GenerateSessionName(ua, "Berlin, Germany"); got != "Chrome on Windows (Berlin, Germany)" {
		t.Errorf("with location = %q", got)
	}
	if got := GenerateSessionName(ua, ""); got != "Chrome on Windows (Unknown Location)" {
		t.Errorf("without location = %q", got)
	}
}
