// Package tutorial содержит демонстрации идиом: наблюдатели, иерархия логгеров,
// два стиля обработки ошибок, рекурсивное постраничное чтение и пользователи с вычисляемыми полями.
// Каждая демонстрация пишет результат в переданный io.Writer.
package tutorial
