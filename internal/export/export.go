// Package export turns the live editor document into a standalone HTML page.
package export

import "strings"

// FileName is the name the exported page is downloaded or saved as.
const FileName = "generated-website.html"

// Source is anything that can report the current document.
type Source interface {
	HTML() string
	CSS() string
}

// Document wraps the current markup and styles with the interaction styles and
// behaviour for accordions, sliders and countdowns.
func Document(src Source) string {
	var sb strings.Builder
	sb.WriteString(documentHead)
	sb.WriteString(src.CSS())
	sb.WriteString("\n")
	sb.WriteString(interactionStyles)
	sb.WriteString("  </style>\n</head>\n<body>\n")
	sb.WriteString(src.HTML())
	sb.WriteString("\n<script>\n")
	sb.WriteString(interactionScript)
	sb.WriteString("</script>\n</body>\n</html>\n")
	return sb.String()
}

const documentHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Generated Website</title>
  <style>
`

const interactionStyles = `
.slider { position: relative; overflow: hidden; }
.slide { display: none; }
.slide.active { display: block; }
.accordion-content { display: none; }
.accordion-content.active { display: block; }
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; }
@media (max-width: 768px) {
  .container { padding: 1rem; }
}
`

const interactionScript = `document.addEventListener('DOMContentLoaded', function () {
  document.querySelectorAll('.accordion-header').forEach(function (header) {
    header.addEventListener('click', function () {
      var content = header.nextElementSibling;
      if (!content) { return; }
      var open = content.classList.contains('active');
      document.querySelectorAll('.accordion-content').forEach(function (c) { c.classList.remove('active'); });
      if (!open) { content.classList.add('active'); }
    });
  });

  document.querySelectorAll('.slider').forEach(function (slider) {
    var slides = slider.querySelectorAll('.slide');
    if (slides.length === 0) { return; }
    var current = 0;
    function show(index) {
      current = (index + slides.length) % slides.length;
      slides.forEach(function (s) { s.classList.remove('active'); });
      slides[current].classList.add('active');
    }
    var next = slider.querySelector('.next');
    var prev = slider.querySelector('.prev');
    if (next) { next.addEventListener('click', function () { show(current + 1); }); }
    if (prev) { prev.addEventListener('click', function () { show(current - 1); }); }
    setInterval(function () { show(current + 1); }, 5000);
  });

  document.querySelectorAll('.countdown').forEach(function (countdown) {
    var target = new Date(countdown.getAttribute('data-target-date') || '2024-12-31').getTime();
    function set(selector, value) {
      var el = countdown.querySelector(selector);
      if (el) { el.textContent = String(value).padStart(2, '0'); }
    }
    function tick() {
      var distance = target - Date.now();
      if (distance <= 0) { return; }
      set('[data-days]', Math.floor(distance / 86400000));
      set('[data-hours]', Math.floor((distance % 86400000) / 3600000));
      set('[data-minutes]', Math.floor((distance % 3600000) / 60000));
      set('[data-seconds]', Math.floor((distance % 60000) / 1000));
    }
    tick();
    setInterval(tick, 1000);
  });
});
`
