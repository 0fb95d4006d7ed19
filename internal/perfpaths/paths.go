// Package perfpaths holds the well-known Windows performance counter paths
// the exporter ships with. The objects and counters named here exist on any
// stock Windows install.
package perfpaths

// CPU, from the Processor Information object.
const (
	CPUTotalPct      = `\Processor Information(_Total)\% Processor Time`
	CPUIdlePct       = `\Processor Information(_Total)\% Idle Time`
	CPUUserPct       = `\Processor Information(_Total)\% User Time`
	CPUPrivilegedPct = `\Processor Information(_Total)\% Privileged Time`
	CPUPriorityPct   = `\Processor Information(_Total)\% Priority Time`
	CPUFrequency     = `\Processor Information(_Total)\Processor Frequency`
)

// Memory.
const (
	MemAvailableBytes = `\Memory\Available Bytes`
	MemCacheBytes     = `\Memory\Cache Bytes`
	MemCommittedBytes = `\Memory\Committed Bytes`
)

// Network, per interface. These are wildcard paths; expand them before
// attaching.
const (
	NetBytesReceivedPerSec      = `\Network Interface(*)\Bytes Received/sec`
	NetBytesSentPerSec          = `\Network Interface(*)\Bytes Sent/sec`
	NetPacketsReceivedErrors    = `\Network Interface(*)\Packets Received Errors`
	NetPacketsReceivedDiscarded = `\Network Interface(*)\Packets Received Discarded`
	NetPacketsReceivedPerSec    = `\Network Interface(*)\Packets Received/sec`
	NetPacketsSentPerSec        = `\Network Interface(*)\Packets Sent/sec`
)

// Disk, aggregated over physical disks.
const (
	DiskPctReadTime      = `\PhysicalDisk(_Total)\% Disk Read Time`
	DiskPctWriteTime     = `\PhysicalDisk(_Total)\% Disk Write Time`
	DiskReadBytesPerSec  = `\PhysicalDisk(_Total)\Disk Read Bytes/sec`
	DiskWriteBytesPerSec = `\PhysicalDisk(_Total)\Disk Write Bytes/sec`
)

// System-wide.
const (
	SysProcesses             = `\System\Processes`
	SysThreads               = `\System\Threads`
	SysContextSwitchesPerSec = `\System\Context Switches/sec`
	SysSystemCallsPerSec     = `\System\System Calls/sec`
)
