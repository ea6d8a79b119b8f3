package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// wgpuTarget holds the GPU buffers owned by one renderer label.
type wgpuTarget struct {
	uniform   *wgpu.Buffer
	bindGroup *wgpu.BindGroup
	lines     wgpuVertexBuffer
	triangles wgpuVertexBuffer
}

// wgpuVertexBuffer is a vertex buffer that grows to fit the largest upload seen so far.
type wgpuVertexBuffer struct {
	buffer   *wgpu.Buffer
	capacity uint64
}

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	presentMode          wgpu.PresentMode
	sampleCount          MSAASampleCount
	forceFallbackAdapter bool

	width         int
	height        int
	surfaceFormat wgpu.TextureFormat
	configured    bool

	msaaTexture      *wgpu.Texture
	msaaTextureView  *wgpu.TextureView
	depthTexture     *wgpu.Texture
	depthTextureView *wgpu.TextureView

	bindGroupLayout  *wgpu.BindGroupLayout
	linePipeline     pipeline.Pipeline
	trianglePipeline pipeline.Pipeline
	targets          map[string]*wgpuTarget

	// Frame state shared by every pass drawn before the next Present.
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ Backend = &wgpuRendererBackendImpl{}

// NewWGPUBackend creates a WebGPU Backend presenting to the surface described by desc. The
// swapchain is not created until the first Configure. Defaults to 4x MSAA and VSync presentation.
//
// Parameters:
//   - desc: the platform surface descriptor, usually from window.Window.SurfaceDescriptor
//   - options: variadic list of BackendBuilderOption functions to configure the backend
//
// Returns:
//   - Backend: the newly created backend
//   - error: an error if no adapter or device could be acquired
func NewWGPUBackend(desc *wgpu.SurfaceDescriptor, options ...BackendBuilderOption) (Backend, error) {
	if desc == nil {
		return nil, fmt.Errorf("renderer: nil surface descriptor")
	}
	runtime.LockOSThread()

	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeFifo,
		sampleCount: MSAA4x,
		targets:     make(map[string]*wgpuTarget),
	}
	b.linePipeline = pipeline.NewPipeline("Line", pipeline.WithTopology(wgpu.PrimitiveTopologyLineList))
	b.trianglePipeline = pipeline.NewPipeline("Triangle",
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithBlendEnabled(true),
	)
	for _, opt := range options {
		opt(b)
	}

	b.instance = wgpu.CreateInstance(nil)
	b.surface = b.instance.CreateSurface(desc)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: b.forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	return b, nil
}

func (b *wgpuRendererBackendImpl) Configure(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseAttachments()
	count := uint32(b.sampleCount)

	if count > 1 {
		tex, view, err := b.createAttachment("MSAA Texture", width, height, b.surfaceFormat, count)
		if err != nil {
			return err
		}
		b.msaaTexture, b.msaaTextureView = tex, view
	}

	// Depth sample count must match the color attachment.
	tex, view, err := b.createAttachment("Depth Texture", width, height, wgpu.TextureFormatDepth24Plus, count)
	if err != nil {
		return err
	}
	b.depthTexture, b.depthTextureView = tex, view

	if !b.linePipeline.Compiled() || !b.trianglePipeline.Compiled() {
		if err := b.createPipelines(); err != nil {
			return err
		}
	}

	b.width, b.height = width, height
	b.configured = true
	return nil
}

func (b *wgpuRendererBackendImpl) Size() (width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *wgpuRendererBackendImpl) Draw(pass Pass) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.configured {
		return ErrNotConfigured
	}
	vp := pass.Viewport.Clamp(b.width, b.height)
	if vp.Empty() {
		return nil
	}

	if b.frameSurface == nil {
		surfaceTexture, err := b.surface.GetCurrentTexture()
		if err != nil {
			return fmt.Errorf("renderer: acquire surface texture: %w", err)
		}
		view, err := surfaceTexture.CreateView(nil)
		if err != nil {
			surfaceTexture.Release()
			return fmt.Errorf("renderer: create surface view: %w", err)
		}
		b.frameSurface = surfaceTexture
		b.frameView = view
	}

	target, err := b.target(pass.Label)
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(target.uniform, 0, pass.Frame.Marshal())
	if err := b.upload(&target.lines, pass.Label+" Lines", pass.Lines); err != nil {
		return err
	}
	if err := b.upload(&target.triangles, pass.Label+" Triangles", pass.Triangles); err != nil {
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("renderer: create command encoder: %w", err)
	}

	color := wgpu.RenderPassColorAttachment{
		View:    b.frameView,
		LoadOp:  wgpu.LoadOpLoad,
		StoreOp: wgpu.StoreOpStore,
	}
	// The multisampled target is stored so later passes in the same frame can load it.
	if b.sampleCount > 1 {
		color.View = b.msaaTextureView
		color.ResolveTarget = b.frameView
	}
	if pass.Clear != nil {
		color.LoadOp = wgpu.LoadOpClear
		color.ClearValue = wgpu.Color{
			R: float64(pass.Clear.R),
			G: float64(pass.Clear.G),
			B: float64(pass.Clear.B),
			A: float64(pass.Clear.A),
		}
	}

	rp := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	rp.SetViewport(float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height), 0, 1)
	rp.SetScissorRect(uint32(vp.X), uint32(vp.Y), uint32(vp.Width), uint32(vp.Height))
	rp.SetBindGroup(0, target.bindGroup, nil)

	if n := len(pass.Lines); n > 0 {
		rp.SetPipeline(b.linePipeline.RenderPipeline())
		rp.SetVertexBuffer(0, target.lines.buffer, 0, wgpu.WholeSize)
		rp.Draw(uint32(n), 1, 0, 0)
	}
	if n := len(pass.Triangles); n > 0 {
		rp.SetPipeline(b.trianglePipeline.RenderPipeline())
		rp.SetVertexBuffer(0, target.triangles.buffer, 0, wgpu.WholeSize)
		rp.Draw(uint32(n), 1, 0, 0)
	}
	rp.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		return fmt.Errorf("renderer: finish %s pass: %w", pass.Label, err)
	}
	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	encoder.Release()
	return nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	b.surface.Present()
	b.frameView.Release()
	b.frameSurface.Release()
	b.frameView = nil
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for label, t := range b.targets {
		t.bindGroup.Release()
		t.uniform.Release()
		if t.lines.buffer != nil {
			t.lines.buffer.Release()
		}
		if t.triangles.buffer != nil {
			t.triangles.buffer.Release()
		}
		delete(b.targets, label)
	}
	b.releaseAttachments()
	b.linePipeline.Release()
	b.trianglePipeline.Release()
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	b.configured = false
}

// createAttachment creates a render attachment texture and its view. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) createAttachment(label string, width, height int, format wgpu.TextureFormat, samples uint32) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("renderer: create %s: %w", label, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("renderer: create %s view: %w", label, err)
	}
	return tex, view, nil
}

// releaseAttachments frees the size-dependent textures. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) releaseAttachments() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTexture.Release()
		b.msaaTextureView, b.msaaTexture = nil, nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTexture.Release()
		b.depthTextureView, b.depthTexture = nil, nil
	}
}

// createPipelines builds the line and triangle pipelines from the embedded shader. Caller must
// hold the mutex and the surface format must be known.
func (b *wgpuRendererBackendImpl) createPipelines() error {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "basic.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: basicShaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("renderer: create shader module: %w", err)
	}
	defer module.Release()

	var frame GPUFrameUniform
	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(frame.Size()),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("renderer: create bind group layout: %w", err)
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
	}
	b.bindGroupLayout = layout

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Basic Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return fmt.Errorf("renderer: create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	if err := b.compilePipeline(b.linePipeline, module, pipelineLayout); err != nil {
		return err
	}
	if err := b.compilePipeline(b.trianglePipeline, module, pipelineLayout); err != nil {
		b.linePipeline.Release()
		return err
	}
	return nil
}

// compilePipeline creates the WebGPU pipeline described by p and stores it on p. Caller must
// hold the mutex.
func (b *wgpuRendererBackendImpl) compilePipeline(p pipeline.Pipeline, module *wgpu.ShaderModule, layout *wgpu.PipelineLayout) error {
	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: model.VertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets:    []wgpu.ColorTargetState{p.ColorTarget(b.surfaceFormat)},
		},
		Primitive: p.PrimitiveState(),
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: p.DepthStencilState(wgpu.TextureFormatDepth24Plus),
	})
	if err != nil {
		return fmt.Errorf("renderer: create %s pipeline: %w", p.PipelineKey(), err)
	}
	p.SetRenderPipeline(created)
	return nil
}

// target returns the buffers for label, creating the uniform buffer and bind group on first use.
// Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) target(label string) (*wgpuTarget, error) {
	if t, ok := b.targets[label]; ok {
		return t, nil
	}

	var frame GPUFrameUniform
	uniform, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Frame Uniform",
		Size:  uint64(frame.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: create %s uniform buffer: %w", label, err)
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " Frame Bind Group",
		Layout: b.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniform,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		uniform.Release()
		return nil, fmt.Errorf("renderer: create %s bind group: %w", label, err)
	}

	t := &wgpuTarget{uniform: uniform, bindGroup: bindGroup}
	b.targets[label] = t
	return t, nil
}

// upload writes vertices into vb, doubling its capacity when they do not fit. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) upload(vb *wgpuVertexBuffer, label string, vertices []model.Vertex) error {
	if len(vertices) == 0 {
		return nil
	}
	data := common.SliceToBytes(vertices)
	need := uint64(len(data))

	if vb.buffer == nil || vb.capacity < need {
		capacity := max(vb.capacity, uint64(model.VertexStride)*64)
		for capacity < need {
			capacity *= 2
		}
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label,
			Size:  capacity,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("renderer: create %s buffer: %w", label, err)
		}
		if vb.buffer != nil {
			vb.buffer.Release()
		}
		vb.buffer, vb.capacity = buf, capacity
	}

	b.queue.WriteBuffer(vb.buffer, 0, data)
	return nil
}
