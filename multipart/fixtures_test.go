package multipart

const webkit Boundary = "----WebKitFormBoundaryPVOZifB9OqEwP2fn"

const (
	named      = "test123\naijdisadi>SDASD<a|\n"
	multinamed = "test123\naijdisadi>dwekqie4u219034u129e0wque90qjsd90asffs\n\n\nSDASD<a|\n"
)

// basicForm consists of a field, a file and an array-like file.
const basicForm = "------WebKitFormBoundaryPVOZifB9OqEwP2fn\r\n" +
	"Content-Disposition: form-data; name=\"test\"\r\n" +
	"\r\n" +
	"eqw-dd-sa----123;1[234\r\n" +
	"------WebKitFormBoundaryPVOZifB9OqEwP2fn\r\n" +
	"Content-Disposition: form-data; name=\"named\"; filename=\"\"\r\n" +
	"\r\n" +
	named + "\r\n" +
	"------WebKitFormBoundaryPVOZifB9OqEwP2fn\r\n" +
	"Content-Disposition: form-data; name=\"multinamed[]\"; filename=\"\"\r\n" +
	"\r\n" +
	multinamed + "\r\n" +
	"------WebKitFormBoundaryPVOZifB9OqEwP2fn--\r\n"

// multifileForm repeats the same file name twice.
const multifileForm = "------WebKitFormBoundaryPVOZifB9OqEwP2fn\r\n" +
	"Content-Disposition: form-data; name=\"test\"\r\n" +
	"\r\n" +
	"eqw-dd-sa----123;1[234\r\n" +
	"------WebKitFormBoundaryPVOZifB9OqEwP2fn\r\n" +
	"Content-Disposition: form-data; name=\"multinamed[]\"; filename=\"\"\r\n" +
	"\r\n" +
	named + "\r\n" +
	"------WebKitFormBoundaryPVOZifB9OqEwP2fn\r\n" +
	"Content-Disposition: form-data; name=\"multinamed[]\"; filename=\"\"\r\n" +
	"\r\n" +
	multinamed + "\r\n" +
	"------WebKitFormBoundaryPVOZifB9OqEwP2fn--\r\n"

// uploadForm is what a browser sends for a login with an avatar.
const uploadForm = "------WebKitFormBoundary7MA4YWxkTrZu0gW\r\n" +
	"Content-Disposition: form-data; name=\"username\"\r\n" +
	"\r\n" +
	"Alice\r\n" +
	"------WebKitFormBoundary7MA4YWxkTrZu0gW\r\n" +
	"Content-Disposition: form-data; name=\"profile_pic\"; filename=\"profile.png\"\r\n" +
	"Content-Type: image/png\r\n" +
	"\r\n" +
	"\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\r\n" +
	"------WebKitFormBoundary7MA4YWxkTrZu0gW--\r\n"
