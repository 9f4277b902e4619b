package main

import "testing"

func TestExtractCloudinaryPublicID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "standard delivery url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1700000000/venues/venue_5_image_1.jpg",
			want: "v1700000000/venues/venue_5_image_1.jpg",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/venues/venue_5_image_1.jpg",
			want: "venues/venue_5_image_1.jpg",
		},
		{
			name:    "no upload segment",
			url:     "https://res.cloudinary.com/demo/image/venues/photo.jpg",
			wantErr: true,
		},
		{
			name:    "upload is the last segment",
			url:     "https://res.cloudinary.com/demo/image/upload",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractCloudinaryPublicID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("publicID = %q, want %q", got, tt.want)
			}
		})
	}
}
