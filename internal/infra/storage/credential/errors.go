package credential

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("credential.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("credential.storage: failed to execute query")

	// ErrFileIO возвращается при ошибке чтения или записи файла хранилища
	ErrFileIO = errors.New("credential.storage: file io error")

	// ErrCorrupted возвращается, когда файл хранилища не является JSON объектом
	ErrCorrupted = errors.New("credential.storage: storage file is corrupted")

	// ErrUnknownDriver возвращается при неизвестном storage.driver
	ErrUnknownDriver = errors.New("credential.storage: unknown driver")
)
