package export

// Canvas2SVGURL is the vector recording library loaded by the toolbar.
const Canvas2SVGURL = "https://cdn.jsdelivr.net/npm/canvas2svg@1.0.16/canvas2svg.js"

// Toolbar is the markup and script inserted before the closing body tag.
const Toolbar = `<!-- graphview export toolbar -->
<div id="export-toolbar" style="
  position: fixed;
  top: 12px;
  right: 12px;
  z-index: 9999;
  background: rgba(255,255,255,0.95);
  border: 1px solid #ccc;
  border-radius: 8px;
  padding: 10px;
  font-family: Arial, sans-serif;
  box-shadow: 0 2px 8px rgba(0,0,0,0.15);
">
  <div style="display:flex; gap:8px; align-items:center;">
    <button id="btn-save-png" style="padding:6px 10px; cursor:pointer;">Save PNG</button>
    <button id="btn-save-svg" style="padding:6px 10px; cursor:pointer;">Save SVG</button>
  </div>
  <div style="margin-top:6px; font-size:12px; color:#555;">
    Exports the current view
  </div>
</div>

<script src="` + Canvas2SVGURL + `"></script>

<script>
(function () {
  var pngButton = document.getElementById("btn-save-png");
  var svgButton = document.getElementById("btn-save-svg");
  var busy = false;

  function setBusy(value) {
    busy = value;
    pngButton.disabled = value;
    svgButton.disabled = value;
  }

  function download(filename, href) {
    var a = document.createElement("a");
    a.href = href;
    a.download = filename;
    document.body.appendChild(a);
    a.click();
    a.remove();
  }

  function downloadBlob(filename, blob) {
    var url = URL.createObjectURL(blob);
    download(filename, url);
    setTimeout(function () { URL.revokeObjectURL(url); }, 1000);
  }

  function getNetworkCanvas() {
    if (typeof network === "undefined" || !network || !network.canvas ||
        !network.canvas.frame || !network.canvas.frame.canvas) {
      return null;
    }
    return network.canvas.frame.canvas;
  }

  pngButton.addEventListener("click", function () {
    if (busy) {
      return;
    }
    var canvas = getNetworkCanvas();
    if (!canvas) {
      alert("Could not find the vis-network canvas (variable 'network').");
      return;
    }
    try {
      download("graph.png", canvas.toDataURL("image/png"));
    } catch (e) {
      alert("PNG export failed: " + e);
    }
  });

  svgButton.addEventListener("click", function () {
    if (busy) {
      return;
    }
    var canvas = getNetworkCanvas();
    if (!canvas) {
      alert("Could not find the vis-network canvas (variable 'network').");
      return;
    }
    if (typeof C2S === "undefined") {
      alert("SVG export library (canvas2svg) not loaded.");
      return;
    }

    setBusy(true);
    var svgText = null;
    var originalGetContext = canvas.getContext;
    try {
      var ctx = new C2S(canvas.width, canvas.height);
      canvas.getContext = function (type) {
        if (type === "2d") {
          return ctx;
        }
        return originalGetContext.apply(canvas, arguments);
      };
      network.redraw();
      svgText = ctx.getSerializedSvg(true);
    } catch (e) {
      alert("SVG export failed: " + e);
    } finally {
      canvas.getContext = originalGetContext;
      try {
        network.redraw();
      } catch (e) {
        alert("Redraw after SVG export failed: " + e);
      }
      setBusy(false);
    }

    if (svgText !== null) {
      downloadBlob("graph.svg", new Blob([svgText], { type: "image/svg+xml;charset=utf-8" }));
    }
  });
})();
</script>
<!-- /graphview export toolbar -->`
