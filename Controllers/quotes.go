package Controllers

import (
	"hash/fnv"
	"time"

	"github.com/gofiber/fiber/v2"
)

var motivationalQuotes = []string{
	"The secret of getting ahead is getting started. - Mark Twain",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"The future depends on what you do today. - Mahatma Gandhi",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"You are never too old to set another goal or to dream a new dream. - C.S. Lewis",
	"The harder you work for something, the greater you'll feel when you achieve it.",
	"Dream bigger. Do bigger.",
	"Push yourself, because no one else is going to do it for you.",
}

// DailyQuote returns the quote of the day, stable for a given calendar date.
func DailyQuote(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"quote": quoteForDate(time.Now())})
}

func quoteForDate(t time.Time) string {
	h := fnv.New32a()
	h.Write([]byte(t.Format("2006-01-02")))
	return motivationalQuotes[h.Sum32()%uint32(len(motivationalQuotes))]
}
