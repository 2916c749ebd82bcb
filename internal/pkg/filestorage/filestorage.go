package filestorage

import "mime/multipart"

// PhotoStorage defines the interface for storing uploaded bootcamp photos
type PhotoStorage interface {
	// SavePhoto stores the upload under the given filename and returns the
	// stored name. The response to the client is only sent after the file
	// has been fully written.
	SavePhoto(fileHeader *multipart.FileHeader, filename string) (string, error)

	// DeletePhoto removes a stored photo; deleting a missing photo is not
	// an error.
	DeletePhoto(filename string) error
}
