package shell

import (
	"fmt"
)

const sidebarWidth = "16rem"

// Stylesheet returns the layout rules of the shell. The sidebar is hidden
// below the breakpoint and fixed to the left edge above it.
func (s *Shell) Stylesheet() string {
	return fmt.Sprintf(`*,*::before,*::after{box-sizing:border-box}
body{margin:0;font-family:system-ui,sans-serif}
.admin-sidebar{display:none;position:fixed;top:0;bottom:0;left:0;width:%[1]s;flex-direction:column;border-right:1px solid #e5e7eb;background:#f9fafb;overflow-y:auto}
.admin-sidebar>div{display:flex;flex:1;flex-direction:column}
.sidebar{display:flex;flex:1;flex-direction:column;padding:1rem}
.sidebar-brand{display:flex;align-items:center;gap:.5rem;font-weight:600;font-size:1.125rem;padding:.5rem;text-decoration:none;color:inherit}
.sidebar-nav{display:flex;flex-direction:column;gap:.25rem;margin-top:1rem}
.sidebar-link{display:flex;align-items:center;gap:.75rem;padding:.5rem .75rem;border-radius:.375rem;text-decoration:none;color:#374151}
.sidebar-link:hover,.sidebar-link[aria-current=page]{background:#e5e7eb;color:#111827}
.sidebar-label{flex:1}
.sidebar-footer{margin-top:auto;padding-top:1rem;border-top:1px solid #e5e7eb}
.badge{display:inline-flex;align-items:center;border-radius:9999px;padding:0 .5rem;font-size:.75rem;font-weight:600;line-height:1.25rem}
.badge-default{background:#111827;color:#fff}
.badge-secondary{background:#e5e7eb;color:#111827}
.badge-destructive{background:#dc2626;color:#fff}
.badge-outline{border:1px solid #d1d5db}
.admin-main{margin-left:0;min-height:100vh;display:flex;flex-direction:column}
.admin-content{flex:1;padding:1.5rem}
@media (min-width: %[2]s){.admin-sidebar{display:flex}.admin-main{margin-left:%[1]s}}
`, sidebarWidth, s.opts.Breakpoint)
}
