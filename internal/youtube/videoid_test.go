package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", want: "dQw4w9WgXcQ"},
		{in: "http://youtube.com/watch?feature=share&v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://m.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://music.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://youtu.be/dQw4w9WgXcQ?si=abc", want: "dQw4w9WgXcQ"},
		{in: "youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/shorts/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/live/dQw4w9WgXcQ?feature=share", want: "dQw4w9WgXcQ"},
		{in: "  dQw4w9WgXcQ  ", want: "dQw4w9WgXcQ"},
		{in: "not a url", want: "not a url"},
		{in: "https://vimeo.com/12345", want: "https://vimeo.com/12345"},
		{in: "https://www.youtube.com/@channel", want: "https://www.youtube.com/@channel"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := ExtractVideoID(tc.in); got != tc.want {
			t.Fatalf("ExtractVideoID(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}
