package site

// pageTemplate is the Go html/template for each documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} · {{.SiteTitle}}</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body data-path="{{.Path}}" data-set="{{.Set}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      {{if .LogoFile}}<a href="/" class="sidebar-logo-link"><img src="/{{.LogoFile}}" alt="{{.SiteTitle}}" class="sidebar-logo"></a>{{end}}
      <h2 class="project-title">{{.SiteTitle}}</h2>
      <input type="text" id="search-input" placeholder="Search docs..." autocomplete="off">
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.Sidebar}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle navigation">&#9776;</button>
      {{if .Trail}}<ol class="trail">{{range .Trail}}<li>{{.}}</li>{{end}}<li aria-current="page">{{.Title}}</li></ol>{{end}}
    </div>
    <article class="page-content">
      {{.Content}}
    </article>
    <nav class="pager" aria-label="Pagination">
      {{with .Prev}}<a class="pager-prev" href="{{.Link}}"><span class="pager-label">Previous</span><span class="pager-title">{{.Name}}</span></a>{{else}}<span></span>{{end}}
      {{with .Next}}<a class="pager-next" href="{{.Link}}"><span class="pager-label">Next</span><span class="pager-title">{{.Name}}</span></a>{{end}}
    </nav>
  </main>
  <script src="/script.js"></script>
</body>
</html>`

// redirectTemplate sends the site root to the first page of the reading order.
const redirectTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url={{.}}">
  <link rel="canonical" href="{{.}}">
</head>
<body><a href="{{.}}">Continue</a></body>
</html>`

// cssContent is the base CSS; code highlighting classes are appended by Stylesheet.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f7f8fa;
  --text: #1f2328;
  --muted: #656d76;
  --accent: #2c4f7c;
  --border: #d8dee4;
  --sidebar-width: 280px;
}
[data-theme="dark"] {
  --bg: #0d1117;
  --bg-sidebar: #161b22;
  --text: #e6edf3;
  --muted: #8d96a0;
  --accent: #58a6ff;
  --border: #30363d;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}
.sidebar {
  position: sticky;
  top: 0;
  height: 100vh;
  width: var(--sidebar-width);
  flex-shrink: 0;
  overflow-y: auto;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  padding: 1rem;
}
.sidebar-logo { max-width: 100%; max-height: 48px; }
.project-title { font-size: 1.1rem; margin: 0.5rem 0 1rem; }
#search-input {
  width: 100%;
  padding: 0.4rem 0.6rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}
.sidebar-tree ul { list-style: none; margin: 0; padding-left: 0.75rem; }
.sidebar-tree > ul.nav-groups { padding-left: 0; }
.sidebar-tree .group-title {
  display: block;
  margin-top: 1.5rem;
  font-weight: 600;
}
.sidebar-tree a {
  display: block;
  padding: 0.15rem 0.5rem;
  border-radius: 4px;
  color: var(--muted);
  text-decoration: none;
}
.sidebar-tree a:hover { color: var(--text); }
.sidebar-tree a.active { color: var(--accent); font-weight: 600; }
.sidebar-tree .dir > .dir-toggle {
  display: block;
  cursor: pointer;
  padding: 0.15rem 0.5rem;
  user-select: none;
}
.sidebar-tree .dir > .dir-toggle::before {
  content: "\25B8";
  display: inline-block;
  width: 1em;
  transition: transform 0.15s;
}
.sidebar-tree .dir.expanded > .dir-toggle::before { transform: rotate(90deg); }
.sidebar-tree .dir > ul { display: none; }
.sidebar-tree .dir.expanded > ul { display: block; }
.sidebar-tree .hidden { display: none; }
.sidebar-overlay { display: none; }
.content { flex: 1; min-width: 0; padding: 1.5rem 3rem 4rem; max-width: 960px; }
.top-bar { display: flex; align-items: center; gap: 1rem; }
.menu-toggle {
  display: none;
  font-size: 1.4rem;
  background: none;
  border: none;
  color: var(--text);
  cursor: pointer;
}
.trail { display: flex; flex-wrap: wrap; list-style: none; margin: 0; padding: 0; color: var(--muted); font-size: 0.9rem; }
.trail li + li::before { content: "/"; padding: 0 0.4rem; }
.page-content pre { padding: 1rem; border-radius: 6px; overflow-x: auto; border: 1px solid var(--border); }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 0.3rem 0.6rem; }
.missing-page { color: var(--muted); font-style: italic; }
.pager {
  display: flex;
  justify-content: space-between;
  gap: 1rem;
  margin-top: 3rem;
  padding-top: 1rem;
  border-top: 1px solid var(--border);
}
.pager a {
  display: flex;
  flex-direction: column;
  padding: 0.75rem 1rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  text-decoration: none;
  color: var(--text);
}
.pager a:hover { border-color: var(--accent); }
.pager-next { margin-left: auto; text-align: right; }
.pager-label { font-size: 0.8rem; color: var(--muted); }
.pager-title { color: var(--accent); font-weight: 600; }
@media (max-width: 900px) {
  .sidebar {
    position: fixed;
    left: 0;
    z-index: 20;
    transform: translateX(-100%);
    transition: transform 0.2s;
  }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible {
    display: block;
    position: fixed;
    inset: 0;
    z-index: 10;
    background: rgba(0, 0, 0, 0.3);
  }
  .menu-toggle { display: block; }
  .content { padding: 1rem 1.25rem 3rem; }
}
`

// jsContent wires the sidebar toggles and the sidebar filter.
const jsContent = `(function() {
  "use strict";

  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  var menuToggle = document.getElementById("menu-toggle");
  var tree = document.getElementById("sidebar-tree");

  // ===== Small-screen menu =====
  function setMenu(open) {
    sidebar.classList.toggle("open", open);
    overlay.classList.toggle("visible", open);
  }
  if (menuToggle) menuToggle.addEventListener("click", function() {
    setMenu(!sidebar.classList.contains("open"));
  });
  if (overlay) overlay.addEventListener("click", function() { setMenu(false); });
  // Following a sidebar link closes the menu before the next page loads.
  if (tree) tree.addEventListener("click", function(e) {
    if (e.target.closest("a")) setMenu(false);
  });

  // ===== Section toggles =====
  document.querySelectorAll(".dir-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      this.parentElement.classList.toggle("expanded");
    });
  });

  // ===== Sidebar filter =====
  var input = document.getElementById("search-input");
  if (!input || !tree) return;

  var index = null;
  fetch("/search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { index = data; })
    .catch(function() { index = null; });

  var initiallyExpanded = Array.from(tree.querySelectorAll(".dir.expanded"));

  input.addEventListener("input", function() {
    var query = this.value.toLowerCase().trim();
    var dirs = Array.from(tree.querySelectorAll(".dir"));

    if (query === "") {
      tree.querySelectorAll(".hidden").forEach(function(el) { el.classList.remove("hidden"); });
      dirs.forEach(function(dir) {
        dir.classList.toggle("expanded", initiallyExpanded.indexOf(dir) !== -1);
      });
      return;
    }

    var matches = new Set();
    if (index) {
      index.forEach(function(entry) {
        var hay = (entry.title + " " + entry.summary + " " + entry.content).toLowerCase();
        if (hay.indexOf(query) !== -1) matches.add(entry.path);
      });
    }

    tree.querySelectorAll(".file").forEach(function(item) {
      var link = item.querySelector("a");
      var href = link.getAttribute("href");
      var hit = link.textContent.toLowerCase().indexOf(query) !== -1 || matches.has(href);
      item.classList.toggle("hidden", !hit);
    });

    dirs.reverse().forEach(function(dir) {
      var visible = dir.querySelectorAll("li.file:not(.hidden)").length > 0;
      dir.classList.toggle("hidden", !visible);
      if (visible) dir.classList.add("expanded");
    });
  });
})();
`
