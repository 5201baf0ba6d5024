package overlap

import "errors"

// ErrRetrieval возвращается, если не удалось получить встречи из хранилища.
// Такая ошибка никогда не трактуется как отсутствие пересечений.
var ErrRetrieval = errors.New("overlap: failed to retrieve appointments")
