package constants

// Upload slot folders under the upload root. Relative paths stored on
// records are always "<folder>/<filename>".
const (
	FolderVouchers     = "vouchers"
	FolderCertificates = "certificates"
	FolderNotices      = "notices"
	FolderGallery      = "gallery"
	FolderDownloads    = "downloads"
	FolderNews         = "news"
	FolderTeam         = "team"
)

// Per-slot MIME allow-lists (declared Content-Type of the multipart part).
var (
	ImageMimeTypes = []string{"image/jpeg", "image/jpg", "image/png"}

	VoucherMimeTypes     = ImageMimeTypes
	CertificateMimeTypes = append([]string{"application/pdf"}, ImageMimeTypes...)
	NoticeMimeTypes      = append([]string{"application/pdf"}, ImageMimeTypes...)
	GalleryMimeTypes     = ImageMimeTypes
	NewsMimeTypes        = ImageMimeTypes
	DownloadMimeTypes = append([]string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}, ImageMimeTypes...)
)
