package email

import (
	"fmt"
	"strings"
)

// HTML renders a drafted message as a standalone HTML document: bullet
// runs become lists, greetings and signatures get their own classes,
// everything else becomes paragraphs inside a styled shell.
func HTML(msg Message) string {
	var parts []string

	for _, para := range strings.Split(msg.Text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}

		switch {
		case hasBullets(para):
			parts = append(parts, renderBullets(para)...)
		case isClosing(para):
			parts = append(parts, renderSignature(para)...)
		case isGreeting(para):
			parts = append(parts, fmt.Sprintf("<p class='greeting'>%s</p>", strings.TrimSpace(para)))
		case strings.Contains(para, "\n") && !strings.HasPrefix(para, "["):
			parts = append(parts, "<p>"+joinLines(para, "<br>")+"</p>")
		default:
			parts = append(parts, "<p>"+strings.TrimSpace(para)+"</p>")
		}
	}

	return fmt.Sprintf(htmlShell, msg.Subject, msg.Subject, strings.Join(parts, "\n"))
}

func hasBullets(para string) bool {
	for _, line := range strings.Split(para, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "•") {
			return true
		}
	}
	return false
}

func renderBullets(para string) []string {
	var items, regular []string
	for _, line := range strings.Split(para, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "•") {
			items = append(items, "<li>"+strings.TrimSpace(strings.TrimPrefix(trimmed, "•"))+"</li>")
		} else if trimmed != "" {
			regular = append(regular, "<p>"+trimmed+"</p>")
		}
	}

	out := regular
	if len(items) > 0 {
		out = append(out, "<ul>"+strings.Join(items, "")+"</ul>")
	}
	return out
}

var greetingMarkers = []string{"dear", "hi ", "hello", "best regards", "sincerely", "looking forward"}

func isGreeting(para string) bool {
	lower := strings.ToLower(para)
	for _, marker := range greetingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isClosing(para string) bool {
	lower := strings.ToLower(para)
	return strings.Contains(lower, "best regards") ||
		strings.Contains(lower, "sincerely") ||
		strings.Contains(lower, "looking forward")
}

func renderSignature(para string) []string {
	out := []string{`<div class="signature">`}
	for _, line := range strings.Split(para, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, "<p>"+trimmed+"</p>")
		}
	}
	return append(out, "</div>")
}

func joinLines(para, sep string) string {
	var lines []string
	for _, line := range strings.Split(para, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, sep)
}

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 650px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f9f9f9;
        }
        .email-container {
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .subject-line {
            background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
            color: white;
            padding: 15px 20px;
            border-radius: 8px;
            margin-bottom: 25px;
            font-weight: bold;
            font-size: 16px;
        }
        .greeting {
            font-weight: 600;
            color: #2c3e50;
            margin-bottom: 20px;
        }
        p {
            margin-bottom: 15px;
            text-align: justify;
        }
        ul {
            background: #f8f9fa;
            padding: 20px 20px 20px 40px;
            border-radius: 8px;
            border-left: 4px solid #667eea;
            margin: 20px 0;
        }
        li {
            margin-bottom: 8px;
            font-weight: 500;
        }
        .signature {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 2px solid #eee;
            color: #666;
            font-size: 14px;
        }
        .signature p {
            margin-bottom: 5px;
        }
    </style>
</head>
<body>
    <div class="email-container">
        <div class="subject-line">
            Subject: %s
        </div>
        <div class="content">
            %s
        </div>
    </div>
</body>
</html>`
