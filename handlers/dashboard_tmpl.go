package handlers

const tmplDashboard = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Forex Market Hours</title>
<style>
:root{--bg:#f8fafc;--card-bg:#ffffff;--border:#e2e8f0;--text-main:#0f172a;--text-muted:#64748b;--accent-color:#3b82f6;--success-color:#10b981}
[data-theme="dark"]{--bg:#0d1117;--card-bg:#161b22;--border:#30363d;--text-main:#f0f6fc;--text-muted:#8b949e}
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',sans-serif;background:var(--bg);color:var(--text-main);font-size:14px;line-height:1.5;padding:16px}
header{display:flex;justify-content:space-between;align-items:center;flex-wrap:wrap;gap:12px;margin-bottom:16px}
#local-clock{font-size:28px;font-weight:700;font-variant-numeric:tabular-nums}
#local-clock.scrubbing{color:var(--accent-color)}
#local-date{color:var(--text-muted);font-size:12px}
.toggles button{background:var(--card-bg);border:1px solid var(--border);color:var(--text-main);border-radius:6px;padding:6px 12px;cursor:pointer;margin-left:6px}
.volume-row{margin:8px 0;color:var(--text-muted)}
.volume-value{font-weight:700}
.volume-value.low{color:var(--text-muted)}
.volume-value.medium{color:var(--accent-color)}
.volume-value.high{color:var(--success-color)}
.volume-value.very-high{color:#ef4444}
#sessions-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:12px;margin-bottom:20px}
.session-card{background:var(--card-bg);border:1px solid var(--border);border-radius:8px;padding:12px}
.session-card.active{border-color:var(--success-color)}
.card-header{display:flex;justify-content:space-between;margin-bottom:8px}
.session-name{font-weight:700}
.status-badge{font-size:11px;padding:2px 8px;border-radius:10px;background:var(--border);color:var(--text-muted)}
.status-badge.open{background:var(--success-color);color:#fff}
.time-row{display:flex;justify-content:space-between;font-size:12px;margin:3px 0}
.time-row .label{color:var(--text-muted)}
.progress-container{height:5px;background:var(--border);border-radius:3px;margin-top:8px;overflow:hidden}
.progress-bar{height:100%;width:0;border-radius:3px;transition:width .3s}
#timeline-wrap{background:var(--card-bg);border:1px solid var(--border);border-radius:8px;padding:12px}
#timeline-vis{position:relative;height:130px;cursor:crosshair;touch-action:none;overflow:hidden;border-radius:4px}
.timeline-volume-strip{position:absolute;left:0;right:0;bottom:0;top:0;display:flex;opacity:.15}
.volume-block{height:100%}
.timeline-bar{position:absolute;height:18px;border-radius:4px;color:#fff;font-size:10px;line-height:18px;padding-left:6px;white-space:nowrap;overflow:hidden}
.current-time-marker{position:absolute;top:0;bottom:0;width:2px;background:var(--text-main);z-index:2}
.current-time-marker.scrubbing{background:var(--accent-color)}
#volume-curve{position:absolute;left:0;right:0;bottom:0;width:100%;height:40px;opacity:.6}
#volume-curve path{fill:none;stroke:var(--accent-color);stroke-width:1.5}
#timeline-axis{display:flex;justify-content:space-between;color:var(--text-muted);font-size:11px;margin-top:6px}
</style>
</head>
<body>
<header>
  <div>
    <div id="local-clock"></div>
    <div id="local-date"></div>
    <div class="volume-row">Expected volume: <span id="current-volume" class="volume-value"></span></div>
  </div>
  <div class="toggles">
    <button id="format-toggle"></button>
    <button id="theme-toggle">Theme</button>
  </div>
</header>
<div id="sessions-grid"></div>
<div id="timeline-wrap">
  <div id="timeline-vis">
    <svg id="volume-curve" viewBox="0 0 960 40" preserveAspectRatio="none"><path id="volume-path" d=""></path></svg>
  </div>
  <div id="timeline-axis"></div>
</div>
<script>
var sessions = {{.Sessions}};
var prefs = {{.Prefs}};
var frame = {{.Frame}};
var tickMS = {{.TickMS}};
var clientID = localStorage.getItem('client') || '';
var scrubbing = false;

function qs(extra) {
  var p = new URLSearchParams();
  if (clientID) p.set('client', clientID);
  p.set('tz', prefs.referenceZone);
  for (var k in (extra || {})) p.set(k, extra[k]);
  return p.toString();
}

function render(f) {
  frame = f;
  var clock = document.getElementById('local-clock');
  clock.textContent = f.clock.time;
  clock.className = f.clock.scrubbing ? 'scrubbing' : '';
  document.getElementById('local-date').textContent = f.clock.date;
  var vol = document.getElementById('current-volume');
  vol.textContent = f.volume.level;
  vol.className = 'volume-value ' + f.volume.class;
  renderGrid(f);
  renderTimeline(f);
}

function renderGrid(f) {
  var grid = document.getElementById('sessions-grid');
  grid.innerHTML = f.cards.map(function (card) {
    return '<div class="session-card' + (card.isOpen ? ' active' : '') + '">' +
      '<div class="card-header"><div class="session-name">' + card.name + '</div>' +
      '<div class="status-badge' + (card.isOpen ? ' open' : '') + '">' + (card.isOpen ? 'Open' : 'Closed') + '</div></div>' +
      '<div class="time-row"><span class="label">Local Time</span><span>' + card.localTime + '</span></div>' +
      '<div class="time-row"><span class="label">Hours (Local)</span><span>' + card.openHours + '</span></div>' +
      '<div class="time-row"><span class="label">Status</span><span style="color:' + (card.isOpen ? card.color : 'var(--text-muted)') + '">' + card.countdown + '</span></div>' +
      '<div class="progress-container"><div class="progress-bar" style="width:' + card.progressPct + '%;background:' + card.color + '"></div></div>' +
      '</div>';
  }).join('');
}

function renderTimeline(f) {
  var vis = document.getElementById('timeline-vis');
  vis.querySelectorAll('.timeline-bar,.current-time-marker,.timeline-volume-strip').forEach(function (n) { n.remove(); });

  var strip = document.createElement('div');
  strip.className = 'timeline-volume-strip';
  f.volumeStrip.forEach(function (s) {
    var block = document.createElement('div');
    block.className = 'volume-block';
    block.style.width = (100 / f.volumeStrip.length) + '%';
    block.style.backgroundColor = s.color;
    block.title = 'Volume: ' + s.level;
    strip.appendChild(block);
  });
  vis.appendChild(strip);

  f.bars.forEach(function (bar, i) {
    bar.segments.forEach(function (seg) {
      var el = document.createElement('div');
      el.className = 'timeline-bar';
      el.style.left = (seg.start * 100) + '%';
      el.style.width = ((seg.end - seg.start) * 100) + '%';
      el.style.top = (i * 22 + 8) + 'px';
      el.style.backgroundColor = bar.color;
      el.textContent = bar.name;
      vis.appendChild(el);
    });
  });

  var marker = document.createElement('div');
  marker.className = 'current-time-marker' + (f.clock.scrubbing ? ' scrubbing' : '');
  marker.style.left = (f.cursorFraction * 100) + '%';
  vis.appendChild(marker);

  document.getElementById('volume-path').setAttribute('d', f.volumePath);
}

function renderAxis() {
  var axis = document.getElementById('timeline-axis');
  axis.innerHTML = '';
  [0, 4, 8, 12, 16, 20, 24].forEach(function (h) {
    var span = document.createElement('span');
    if (prefs.timeFormat === '12h') {
      span.textContent = h % 24 === 0 ? '12 AM' : h === 12 ? '12 PM' : h > 12 ? (h - 12) + ' PM' : h + ' AM';
    } else {
      span.textContent = String(h % 24).padStart(2, '0') + ':00';
    }
    axis.appendChild(span);
  });
}

function fetchFrame(extra) {
  return fetch('/api/market/snapshot?' + qs(extra)).then(function (r) { return r.json(); }).then(render);
}

// Live stream; paused while scrubbing.
var source = new EventSource('/api/market/stream?' + qs());
source.addEventListener('frame', function (e) {
  if (!scrubbing) render(JSON.parse(e.data));
});

// Scrubbing: press maps the pointer to a fraction of the axis, release
// reverts to live tracking. Listeners attach on press and are removed
// unconditionally on release, wherever it lands.
var vis = document.getElementById('timeline-vis');
function scrubTo(clientX) {
  var rect = vis.getBoundingClientRect();
  var frac = Math.max(0, Math.min(1, (clientX - rect.left) / rect.width));
  fetch('/api/market/scrub?' + qs({ frac: frac })).then(function (r) { return r.json(); }).then(render);
}
function onMove(e) { scrubTo(e.touches ? e.touches[0].clientX : e.clientX); }
function onRelease() {
  window.removeEventListener('pointermove', onMove);
  window.removeEventListener('pointerup', onRelease);
  scrubbing = false;
  fetchFrame();
}
vis.addEventListener('pointerdown', function (e) {
  scrubbing = true;
  scrubTo(e.clientX);
  window.addEventListener('pointermove', onMove);
  window.addEventListener('pointerup', onRelease);
});

function savePrefs() {
  var req = clientID ? Promise.resolve() : fetch('/api/preferences').then(function (r) { return r.json(); }).then(function (d) {
    clientID = d.client;
    localStorage.setItem('client', clientID);
  });
  req.then(function () {
    fetch('/api/preferences?client=' + clientID, {
      method: 'PUT',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(prefs)
    });
  });
}

var formatToggle = document.getElementById('format-toggle');
formatToggle.textContent = prefs.timeFormat === '12h' ? '12H' : '24H';
formatToggle.addEventListener('click', function () {
  prefs.timeFormat = prefs.timeFormat === '12h' ? '24h' : '12h';
  formatToggle.textContent = prefs.timeFormat === '12h' ? '12H' : '24H';
  savePrefs();
  renderAxis();
  fetchFrame();
});

document.getElementById('theme-toggle').addEventListener('click', function () {
  prefs.theme = prefs.theme === 'dark' ? 'light' : 'dark';
  document.documentElement.setAttribute('data-theme', prefs.theme);
  savePrefs();
});

renderAxis();
render(frame);
</script>
</body>
</html>
`
